package win32

// Thin wrappers over the user32 calls the resize machinery needs. The
// procs are resolved lazily via golang.org/x/sys/windows so the package
// links without an import library and degrades per-call when an entry
// point is missing (older systems, Wine).

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procGetClientRect     = user32.NewProc("GetClientRect")
	procGetWindowRect     = user32.NewProc("GetWindowRect")
	procSetWindowPos      = user32.NewProc("SetWindowPos")
	procMonitorFromWindow = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW   = user32.NewProc("GetMonitorInfoW")
	procSetWindowLongPtrW = user32.NewProc("SetWindowLongPtrW")
	procCallWindowProcW   = user32.NewProc("CallWindowProcW")
	procSetTimer          = user32.NewProc("SetTimer")
	procKillTimer         = user32.NewProc("KillTimer")
	procGetAsyncKeyState  = user32.NewProc("GetAsyncKeyState")
	procIsWindow          = user32.NewProc("IsWindow")
)

// Window messages and related constants.
const (
	WM_ENTERSIZEMOVE = 0x0231
	WM_EXITSIZEMOVE  = 0x0232
	WM_TIMER         = 0x0113

	GWLP_WNDPROC = -4

	SWP_NOSIZE         = 0x0001
	SWP_NOZORDER       = 0x0004
	SWP_NOOWNERZORDER  = 0x0200
	SWP_NOACTIVATE     = 0x0010
	SWP_NOSENDCHANGING = 0x0400

	MONITOR_DEFAULTTONEAREST = 0x0002
)

// Rect mirrors the Win32 RECT layout.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// MonitorInfo mirrors the Win32 MONITORINFO layout.
type MonitorInfo struct {
	Size    uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
}

// IsWindow reports whether hwnd identifies an existing window.
func IsWindow(hwnd uintptr) bool {
	if procIsWindow.Find() != nil {
		return false
	}
	r, _, _ := procIsWindow.Call(hwnd)
	return r != 0
}

// ClientRect returns the client area rectangle; its Left/Top are always 0.
func ClientRect(hwnd uintptr) (Rect, error) {
	if err := procGetClientRect.Find(); err != nil {
		return Rect{}, fmt.Errorf("GetClientRect: %w", err)
	}
	var rc Rect
	r, _, err := procGetClientRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return Rect{}, fmt.Errorf("GetClientRect: %w", err)
	}
	return rc, nil
}

// WindowRect returns the full window rectangle in screen coordinates.
func WindowRect(hwnd uintptr) (Rect, error) {
	if err := procGetWindowRect.Find(); err != nil {
		return Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	var rc Rect
	r, _, err := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc)))
	if r == 0 {
		return Rect{}, fmt.Errorf("GetWindowRect: %w", err)
	}
	return rc, nil
}

// MoveWindow repositions the window without resizing or reordering it.
// SWP_NOSENDCHANGING keeps the move from generating feedback messages
// into the hooked procedure mid-resize.
func MoveWindow(hwnd uintptr, x, y int) {
	if procSetWindowPos.Find() != nil {
		return
	}
	procSetWindowPos.Call(hwnd, 0,
		uintptr(int32(x)), uintptr(int32(y)), 0, 0,
		uintptr(SWP_NOSIZE|SWP_NOZORDER|SWP_NOOWNERZORDER|SWP_NOACTIVATE|SWP_NOSENDCHANGING))
}

// MonitorBounds returns the bounds of the monitor nearest to (normally
// containing) the window.
func MonitorBounds(hwnd uintptr) (Rect, error) {
	if err := procMonitorFromWindow.Find(); err != nil {
		return Rect{}, fmt.Errorf("MonitorFromWindow: %w", err)
	}
	if err := procGetMonitorInfoW.Find(); err != nil {
		return Rect{}, fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	hmon, _, _ := procMonitorFromWindow.Call(hwnd, uintptr(MONITOR_DEFAULTTONEAREST))
	if hmon == 0 {
		return Rect{}, fmt.Errorf("MonitorFromWindow: no monitor for window %#x", hwnd)
	}
	mi := MonitorInfo{Size: uint32(unsafe.Sizeof(MonitorInfo{}))}
	r, _, err := procGetMonitorInfoW.Call(hmon, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return Rect{}, fmt.Errorf("GetMonitorInfoW: %w", err)
	}
	return mi.Monitor, nil
}

// SwapWindowProc installs proc as the window procedure and returns the
// previous one. SetWindowLongPtrW reports failure with a zero return plus
// a set last-error; a zero return with no error just means the previous
// value was zero.
func SwapWindowProc(hwnd uintptr, proc uintptr) (uintptr, error) {
	// SetWindowLongPtrW does not exist on 32-bit user32; treat a missing
	// proc as an install failure, not a panic.
	if err := procSetWindowLongPtrW.Find(); err != nil {
		return 0, fmt.Errorf("SetWindowLongPtrW: %w", err)
	}
	if err := procCallWindowProcW.Find(); err != nil {
		return 0, fmt.Errorf("CallWindowProcW: %w", err)
	}
	idx := int32(GWLP_WNDPROC)
	prev, _, err := procSetWindowLongPtrW.Call(hwnd, uintptr(idx), proc)
	if prev == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return 0, fmt.Errorf("SetWindowLongPtrW(GWLP_WNDPROC): %w", err)
		}
	}
	return prev, nil
}

// CallWindowProc forwards a message to a retained window procedure.
func CallWindowProc(proc, hwnd uintptr, msg uint32, wparam, lparam uintptr) uintptr {
	if procCallWindowProcW.Find() != nil {
		return 0
	}
	r, _, _ := procCallWindowProcW.Call(proc, hwnd, uintptr(msg), wparam, lparam)
	return r
}

// SetTimer starts a window timer. When cb is non-zero it is a TIMERPROC
// callback (created with syscall.NewCallback); Windows then delivers the
// ticks through the thread's message dispatch, including the modal
// size-move loop. Returns the timer id actually assigned.
func SetTimer(hwnd uintptr, id uintptr, ms uint32, cb uintptr) (uintptr, error) {
	if err := procSetTimer.Find(); err != nil {
		return 0, fmt.Errorf("SetTimer: %w", err)
	}
	r, _, err := procSetTimer.Call(hwnd, id, uintptr(ms), cb)
	if r == 0 {
		return 0, fmt.Errorf("SetTimer: %w", err)
	}
	return r, nil
}

// KillTimer stops a window timer and discards any pending WM_TIMER for it.
func KillTimer(hwnd uintptr, id uintptr) {
	if procKillTimer.Find() != nil {
		return
	}
	procKillTimer.Call(hwnd, id)
}

// KeyDown reports whether the virtual key is currently held.
func KeyDown(vk int) bool {
	if procGetAsyncKeyState.Find() != nil {
		return false
	}
	r, _, _ := procGetAsyncKeyState.Call(uintptr(uint32(vk)))
	return uint16(r)&0x8000 != 0
}
