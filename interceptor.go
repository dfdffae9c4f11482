package liveresize

import "errors"

// ErrHookInstall is returned when the native window procedure cannot be
// subclassed. The condition is degraded, not fatal: without the hook the
// window stays visually frozen during drags but nothing crashes.
var ErrHookInstall = errors.New("liveresize: window procedure hook install failed")

// Notification codes bracketing an interactive size-move. The values are
// the Win32 WM_ENTERSIZEMOVE / WM_EXITSIZEMOVE identifiers; non-native
// hosts reuse them as the canonical codes.
const (
	MsgEnterSizeMove uint32 = 0x0231
	MsgExitSizeMove  uint32 = 0x0232
)

// Message is one native window notification. Code carries the platform
// message identifier (WM_* on Windows); WParam and LParam are passed
// through untouched.
type Message struct {
	Window uintptr
	Code   uint32
	WParam uintptr
	LParam uintptr
}

// MessageHandler processes one native window message and returns the
// platform result value.
type MessageHandler interface {
	HandleMessage(msg Message) uintptr
}

// MessageHandlerFunc adapts a function to MessageHandler.
type MessageHandlerFunc func(msg Message) uintptr

func (f MessageHandlerFunc) HandleMessage(msg Message) uintptr { return f(msg) }

// SizeMoveObserver is notified when an interactive size-move begins and
// ends. ResizePump satisfies it.
type SizeMoveObserver interface {
	OnOperationStart()
	OnOperationEnd()
}

// Interceptor wraps an existing message handler, watching for the two
// notifications that bracket an interactive size-move and forwarding
// every message — recognized or not — to the wrapped handler exactly
// once. It never swallows a message: dragging, the system menu, close and
// all other standard behavior pass through untouched.
type Interceptor struct {
	next     MessageHandler
	observer SizeMoveObserver
	begin    uint32
	end      uint32
}

// NewInterceptor returns an interceptor that reports the begin/end codes
// to observer and forwards everything to next.
func NewInterceptor(next MessageHandler, observer SizeMoveObserver, beginCode, endCode uint32) *Interceptor {
	return &Interceptor{next: next, observer: observer, begin: beginCode, end: endCode}
}

// HandleMessage inspects one message and forwards it. Local handling
// happens before the forward so the pump is running by the time the
// original procedure enters the modal loop.
func (ic *Interceptor) HandleMessage(msg Message) uintptr {
	switch msg.Code {
	case ic.begin:
		ic.observer.OnOperationStart()
	case ic.end:
		ic.observer.OnOperationEnd()
	}
	return ic.next.HandleMessage(msg)
}
