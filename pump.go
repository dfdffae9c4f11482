package liveresize

import "time"

// DefaultPumpInterval is the tick period used while an interactive
// size-move is in progress, roughly one tick per 60Hz frame.
const DefaultPumpInterval = 16 * time.Millisecond

// TickSource fires a callback at a fixed interval on the thread that owns
// the render loop. On Windows this is a SetTimer-based source whose
// callback is delivered inside the modal size-move loop; tests fire
// ticks by hand. It is a cooperative reentry mechanism, not a separate
// thread.
type TickSource interface {
	// Start begins firing fn every interval. The source fires no callback
	// before Start and none after Stop returns.
	Start(interval time.Duration, fn func()) error

	// Stop halts the source synchronously. Stopping a stopped source is a
	// no-op.
	Stop()
}

// ResizePump keeps frames flowing while the native event loop is blocked
// servicing an interactive resize or move.
//
// Between OnOperationStart and OnOperationEnd it owns frame production
// outright: each tick reconciles the backbuffer with the live client size
// and then produces exactly one frame. Outside that span the pump is
// inert and the normal engine loop is the sole frame driver. The two
// never overlap because the native loop is blocked for exactly the span
// the pump is active.
//
// ResizePump is single-threaded by contract and holds no locks.
type ResizePump struct {
	win      Window
	renderer Renderer
	frame    FrameFunc
	ticker   TickSource
	interval time.Duration

	active  bool // interactive size-move in progress
	ticking bool // tick source running; false while active means a failed start
}

// NewResizePump returns a pump over the given services. frame may be nil
// if the caller only wants size reconciliation during drags. interval <= 0
// falls back to DefaultPumpInterval.
func NewResizePump(win Window, renderer Renderer, frame FrameFunc, ticker TickSource, interval time.Duration) *ResizePump {
	if interval <= 0 {
		interval = DefaultPumpInterval
	}
	return &ResizePump{
		win:      win,
		renderer: renderer,
		frame:    frame,
		ticker:   ticker,
		interval: interval,
	}
}

// Active reports whether an interactive size-move is in progress.
func (p *ResizePump) Active() bool { return p.active }

// OnOperationStart begins pumping. Calling it while already active is a
// no-op, so at most one tick source is ever live.
func (p *ResizePump) OnOperationStart() {
	if p.active {
		return
	}
	p.active = true
	if err := p.ticker.Start(p.interval, p.tick); err != nil {
		// Visuals freeze during this drag, but the operation is still
		// tracked so the final resize on operation end runs.
		Logger().Warn("resize pump tick source failed to start", "error", err)
		return
	}
	p.ticking = true
	Logger().Debug("resize pump started", "interval", p.interval)
}

// OnOperationEnd stops pumping and performs one final unconditional
// resize to the window's current client size. Intermediate ticks can
// under-sample a fast drag, leaving the backbuffer one step behind the
// final size; the closing resize guarantees consistency even when the
// size is unchanged. Calling OnOperationEnd while idle is a no-op.
//
// The tick source is stopped synchronously: no tick fires after this
// returns.
func (p *ResizePump) OnOperationEnd() {
	if !p.active {
		return
	}
	if p.ticking {
		p.ticker.Stop()
		p.ticking = false
	}
	p.active = false

	w, h := p.win.ClientSize()
	p.resizePreservingPosition(w, h)
	Logger().Debug("resize pump stopped", "width", w, "height", h)
}

// tick reconciles the backbuffer with the live client size and produces
// one frame.
func (p *ResizePump) tick() {
	w, h := p.win.ClientSize()
	bw, bh := p.renderer.BackbufferSize()
	if w != bw || h != bh {
		p.resizePreservingPosition(w, h)
	}
	if p.frame != nil {
		p.frame()
	}
}

// resizePreservingPosition applies a backbuffer resize with the window
// position saved before and reasserted after. Applying a resize can
// sometimes move the window; the exact trigger is undocumented, so the
// save/restore is unconditional.
func (p *ResizePump) resizePreservingPosition(w, h int) {
	x, y := p.win.Position()
	p.renderer.ResizeBackbuffer(w, h)
	p.win.SetPosition(x, y)
}
