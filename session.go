package liveresize

import (
	"context"
	"time"
)

// Session wires the resize machinery around one window and renderer. It
// owns the display controller, the resize pump and the virtual canvas,
// and exposes the single frame path that both the normal loop and the
// pump drive.
//
// Session is single-threaded: all methods must be called from the thread
// that owns the render loop.
type Session struct {
	win      Window
	renderer Renderer
	canvas   VirtualCanvas
	toggle   ToggleInput

	display *DisplayController
	pump    *ResizePump

	hook Hook
}

// Hook is the installed message-interception handle. On Windows it is the
// subclassed window procedure; the zero implementation (NopHook) is used
// where no native hook exists, leaving the session in degraded mode.
type Hook interface {
	// Install replaces the window's message entry point with handler,
	// retaining the original for forwarding and for Uninstall.
	Install(handler func(Message) uintptr) error

	// Uninstall restores the original entry point. Idempotent.
	Uninstall()

	// ForwardToOriginal passes a message to the retained original entry
	// point. Valid only between Install and Uninstall.
	ForwardToOriginal(msg Message) uintptr

	// Ticker returns the tick source bound to the same thread context as
	// the hooked window.
	Ticker() TickSource
}

// SessionOption configures NewSession.
type SessionOption func(*Session)

// WithHook supplies the native hook implementation. Without it the
// session uses NopHook and InstallHook reports ErrHookInstall.
func WithHook(h Hook) SessionOption {
	return func(s *Session) { s.hook = h }
}

// WithPumpInterval overrides the pump tick period.
func WithPumpInterval(d time.Duration) SessionOption {
	return func(s *Session) { s.pump.interval = d }
}

// NewSession builds a session over the given services. The display
// snapshot is seeded from the window's current geometry here, before any
// toggle can occur.
func NewSession(win Window, renderer Renderer, canvas VirtualCanvas, toggle ToggleInput, opts ...SessionOption) *Session {
	s := &Session{
		win:      win,
		renderer: renderer,
		canvas:   canvas,
		toggle:   toggle,
		hook:     NopHook{},
	}
	s.display = NewDisplayController(win, renderer)
	// The tick source comes from the hook once options have run; build the
	// pump first with a placeholder interval and bind the ticker below.
	s.pump = NewResizePump(win, renderer, s.Frame, nil, DefaultPumpInterval)
	for _, opt := range opts {
		opt(s)
	}
	s.pump.ticker = s.hook.Ticker()
	return s
}

// Display returns the display mode controller.
func (s *Session) Display() *DisplayController { return s.display }

// Pump returns the resize pump.
func (s *Session) Pump() *ResizePump { return s.pump }

// InstallHook subclasses the window procedure so that interactive
// size-move operations drive the pump. On failure the session keeps
// working in degraded mode: frames stop during drags but resume on
// release, and ErrHookInstall is returned for reporting.
func (s *Session) InstallHook() error {
	forward := MessageHandlerFunc(s.hook.ForwardToOriginal)
	ic := NewInterceptor(forward, s.pump, MsgEnterSizeMove, MsgExitSizeMove)
	if err := s.hook.Install(ic.HandleMessage); err != nil {
		Logger().Warn("message hook unavailable, resize stays frozen during drags", "error", err)
		return err
	}
	return nil
}

// UninstallHook restores the original window procedure and stops the pump
// if a size-move was somehow still in progress.
func (s *Session) UninstallHook() {
	s.pump.OnOperationEnd()
	s.hook.Uninstall()
}

// Frame runs one update+draw cycle: poll the fullscreen toggle, recompute
// the letterbox viewport from the live client size, render. The viewport
// is recomputed every frame rather than cached so the bars track the true
// window edge during a drag.
func (s *Session) Frame() {
	if s.toggle != nil && s.toggle.TogglePressed() {
		s.display.Toggle()
	}
	w, h := s.win.ClientSize()
	s.renderer.SetViewport(s.canvas.Fit(w, h))
	s.renderer.RenderFrame()
}

// RunPaced drives Frame at the given rate until ctx is done. While an
// interactive size-move is active the pump produces the frames instead;
// RunPaced only idles through such a span because the native loop blocks
// the caller anyway. Non-positive fps falls back to 60; values above
// 1000 are clamped to 1000.
func (s *Session) RunPaced(ctx context.Context, fps int) {
	budget := time.Second / time.Duration(clampFPS(fps))
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		start := time.Now()
		if !s.pump.Active() {
			s.Frame()
		}
		if rest := budget - time.Since(start); rest > 0 {
			time.Sleep(rest)
		}
	}
}

func clampFPS(fps int) int {
	if fps <= 0 {
		return 60
	}
	if fps > 1000 {
		return 1000
	}
	return fps
}

// NopHook is a Hook for platforms or tests without native subclassing.
// Install always fails with ErrHookInstall; the ticker is a plain
// time-based source usable in simulations.
type NopHook struct{}

func (NopHook) Install(func(Message) uintptr) error   { return ErrHookInstall }
func (NopHook) Uninstall()                            {}
func (NopHook) ForwardToOriginal(msg Message) uintptr { return 0 }
func (NopHook) Ticker() TickSource                    { return &sleepTicker{} }

// sleepTicker is a goroutine-driven TickSource for headless use. Real
// deployments use the platform timer so ticks share the window's thread;
// simulations have no such thread, so a goroutine stands in. Stop is
// synchronous: it waits for the loop to exit.
type sleepTicker struct {
	stop chan struct{}
	done chan struct{}
}

func (t *sleepTicker) Start(interval time.Duration, fn func()) error {
	if t.stop != nil {
		return nil // already running; pump idempotence normally prevents this
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go func(stop, done chan struct{}) {
		defer close(done)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				fn()
			}
		}
	}(t.stop, t.done)
	return nil
}

func (t *sleepTicker) Stop() {
	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop = nil
	t.done = nil
}
