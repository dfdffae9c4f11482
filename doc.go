// Package liveresize keeps a real-time rendering application visually
// responsive while its window is being interactively resized or moved.
//
// On Windows, dragging a window's chrome enters an OS-modal loop that
// blocks the application's own event/render loop until the mouse is
// released. This package compensates in four parts:
//
//   - Interceptor subclasses the native window procedure and watches for
//     the begin/end of an interactive size-move operation. Every message
//     is forwarded to the original procedure, so normal window behavior
//     is preserved.
//   - ResizePump drives update+render manually from a native timer while
//     the modal loop is blocked, re-synchronizing the backbuffer with the
//     live client size on every tick.
//   - VirtualCanvas maps a fixed virtual resolution onto an arbitrary
//     client size, producing a centered letterboxed viewport.
//   - DisplayController toggles borderless fullscreen, remembering and
//     restoring the prior windowed geometry across monitors.
//
// Session ties the parts together for the common case:
//
//	win := liveresize.AttachWindow(hwnd)
//	sess := liveresize.NewSession(win, renderer, liveresize.NewVirtualCanvas(800, 600), toggle)
//	if err := sess.InstallHook(); err != nil {
//		// degraded: visuals freeze during drags, everything else works
//	}
//	sess.RunPaced(ctx, 60)
//
// The core is platform-independent and driven entirely through the
// Window, Renderer and ToggleInput contracts in services.go; only the
// *_windows.go files and internal/win32 touch user32.
package liveresize
