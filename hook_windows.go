package liveresize

import (
	"fmt"
	"syscall"
	"time"

	"github.com/mmngadi/go-liveresize/internal/win32"
)

// NewWindowsHook returns the Hook implementation for a Win32 window:
// procedure subclassing plus a SetTimer-backed tick source. The timer
// callback is delivered through the thread's message dispatch, which
// keeps running inside the modal size-move loop — that reentry is what
// lets the pump produce frames while the application's own loop is
// blocked.
func NewWindowsHook(win *NativeWindow) Hook {
	return &windowsHook{hwnd: win.Handle()}
}

type windowsHook struct {
	hwnd     uintptr
	handler  func(Message) uintptr
	original uintptr
	thunk    uintptr // syscall.NewCallback result, retained for process life
}

func (h *windowsHook) Install(handler func(Message) uintptr) error {
	if h.original != 0 {
		return nil // already installed
	}
	if !win32.IsWindow(h.hwnd) {
		return fmt.Errorf("%w: invalid window handle %#x", ErrHookInstall, h.hwnd)
	}
	h.handler = handler
	if h.thunk == 0 {
		// NewCallback slots are never released; create exactly one per hook.
		h.thunk = syscall.NewCallback(func(hwnd uintptr, msg uintptr, wparam, lparam uintptr) uintptr {
			return h.handler(Message{
				Window: hwnd,
				Code:   uint32(msg),
				WParam: wparam,
				LParam: lparam,
			})
		})
	}
	prev, err := win32.SwapWindowProc(h.hwnd, h.thunk)
	if err != nil || prev == 0 {
		h.handler = nil
		return fmt.Errorf("%w: %v", ErrHookInstall, err)
	}
	h.original = prev
	return nil
}

func (h *windowsHook) Uninstall() {
	if h.original == 0 {
		return
	}
	if _, err := win32.SwapWindowProc(h.hwnd, h.original); err != nil {
		Logger().Warn("window procedure restore failed", "error", err)
	}
	h.original = 0
	h.handler = nil
}

func (h *windowsHook) ForwardToOriginal(msg Message) uintptr {
	return win32.CallWindowProc(h.original, msg.Window, msg.Code, msg.WParam, msg.LParam)
}

func (h *windowsHook) Ticker() TickSource {
	return &timerTick{hwnd: h.hwnd}
}

// timerTick is a TickSource on a Win32 window timer. Start and Stop are
// synchronous: KillTimer discards any pending tick, so no callback fires
// after Stop returns.
type timerTick struct {
	hwnd  uintptr
	id    uintptr
	fn    func()
	thunk uintptr
}

func (t *timerTick) Start(interval time.Duration, fn func()) error {
	if t.id != 0 {
		return nil // already running; pump idempotence normally prevents this
	}
	t.fn = fn
	if t.thunk == 0 {
		t.thunk = syscall.NewCallback(func(hwnd, msg, id, tick uintptr) uintptr {
			if t.fn != nil {
				t.fn()
			}
			return 0
		})
	}
	ms := uint32(interval / time.Millisecond)
	if ms == 0 {
		ms = 1
	}
	id, err := win32.SetTimer(t.hwnd, timerIDResizePump, ms, t.thunk)
	if err != nil {
		t.fn = nil
		return err
	}
	t.id = id
	return nil
}

func (t *timerTick) Stop() {
	if t.id == 0 {
		return
	}
	win32.KillTimer(t.hwnd, t.id)
	t.id = 0
	t.fn = nil
}

// timerIDResizePump is an arbitrary nonzero timer id; ids only need to be
// unique per window.
const timerIDResizePump = 0x5250 // "RP"
