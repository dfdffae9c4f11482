package liveresize

import (
	"github.com/mmngadi/go-liveresize/internal/win32"
)

// NativeWindow adapts a Win32 window handle to the Window contract.
// The zero value is not usable; construct with AttachWindow.
type NativeWindow struct {
	hwnd uintptr
}

// AttachWindow wraps an existing HWND. The handle is owned by the caller;
// liveresize never creates or destroys windows.
func AttachWindow(hwnd uintptr) *NativeWindow {
	return &NativeWindow{hwnd: hwnd}
}

// Handle returns the wrapped HWND.
func (w *NativeWindow) Handle() uintptr { return w.hwnd }

// ClientSize returns the drawable client area. Failures (destroyed
// window) report 0x0, which downstream code treats as degenerate.
func (w *NativeWindow) ClientSize() (int, int) {
	rc, err := win32.ClientRect(w.hwnd)
	if err != nil {
		return 0, 0
	}
	return int(rc.Right - rc.Left), int(rc.Bottom - rc.Top)
}

// Position returns the window's top-left corner in screen coordinates.
func (w *NativeWindow) Position() (int, int) {
	rc, err := win32.WindowRect(w.hwnd)
	if err != nil {
		return 0, 0
	}
	return int(rc.Left), int(rc.Top)
}

// SetPosition moves the window without resizing or reordering it.
func (w *NativeWindow) SetPosition(x, y int) {
	win32.MoveWindow(w.hwnd, x, y)
}

// MonitorBounds returns the bounds of the monitor the window occupies.
// If the query fails the window rect itself is returned so a fullscreen
// toggle degrades to a no-op instead of collapsing the window.
func (w *NativeWindow) MonitorBounds() Rect {
	mrc, err := win32.MonitorBounds(w.hwnd)
	if err != nil {
		Logger().Warn("monitor query failed", "error", err)
		rc, rerr := win32.WindowRect(w.hwnd)
		if rerr != nil {
			return Rect{}
		}
		mrc = rc
	}
	return Rect{
		X:      int(mrc.Left),
		Y:      int(mrc.Top),
		Width:  int(mrc.Right - mrc.Left),
		Height: int(mrc.Bottom - mrc.Top),
	}
}
