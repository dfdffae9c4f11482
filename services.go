package liveresize

// Window is the windowing service the core consumes. On Windows it is
// satisfied by NativeWindow; tests use in-memory fakes.
//
// All methods are called from the thread that owns the render loop.
type Window interface {
	// ClientSize returns the current drawable client area in pixels.
	ClientSize() (width, height int)

	// Position returns the window's top-left corner in screen coordinates.
	Position() (x, y int)

	// SetPosition moves the window's top-left corner in screen coordinates.
	SetPosition(x, y int)

	// MonitorBounds returns the bounds of the monitor the window currently
	// occupies, not necessarily the primary monitor.
	MonitorBounds() Rect
}

// Renderer is the rendering service the core consumes. A resize request
// is treated as applied before the next frame is produced.
type Renderer interface {
	// ResizeBackbuffer requests that the output buffer match the given
	// pixel dimensions.
	ResizeBackbuffer(width, height int)

	// BackbufferSize returns the currently applied output dimensions.
	BackbufferSize() (width, height int)

	// SetViewport supplies the letterboxed destination rectangle for the
	// next frame. Called every frame.
	SetViewport(vp Viewport)

	// RenderFrame performs one full update+draw cycle using the current
	// backbuffer and viewport.
	RenderFrame()
}

// ToggleInput reports the fullscreen toggle key. TogglePressed is
// edge-triggered: it returns true exactly once per physical press.
type ToggleInput interface {
	TogglePressed() bool
}

// FrameFunc produces exactly one application frame. The pump invokes it
// on every tick; Session.Frame is the usual implementation.
type FrameFunc func()
