package liveresize

// DisplayMode is the window's presentation mode.
type DisplayMode int

const (
	// Windowed is normal decorated presentation.
	Windowed DisplayMode = iota
	// BorderlessFullscreen covers the window's monitor without chrome.
	// Distinct from exclusive fullscreen: no display mode change occurs.
	BorderlessFullscreen
)

func (m DisplayMode) String() string {
	switch m {
	case Windowed:
		return "windowed"
	case BorderlessFullscreen:
		return "borderless-fullscreen"
	default:
		return "unknown"
	}
}

// DisplayController switches between windowed and borderless-fullscreen
// presentation, owning the single windowed-geometry snapshot.
//
// The controller must only be used from the thread that owns the render
// loop. Toggling is user-input driven (a keypress observed in the normal
// update step), never called from the message-interception callback.
type DisplayController struct {
	win      Window
	renderer Renderer

	mode     DisplayMode
	windowed Rect // snapshot of windowed placement, applied on exit
}

// NewDisplayController returns a controller seeded with the window's
// current geometry. Seeding at construction guarantees the snapshot is
// genuine windowed geometry even if ExitFullscreen is somehow reached
// before any EnterFullscreen.
func NewDisplayController(win Window, renderer Renderer) *DisplayController {
	c := &DisplayController{win: win, renderer: renderer, mode: Windowed}
	c.windowed = c.currentGeometry()
	return c
}

// Mode returns the current presentation mode.
func (c *DisplayController) Mode() DisplayMode { return c.mode }

// WindowedGeometry returns the snapshot that ExitFullscreen will restore.
func (c *DisplayController) WindowedGeometry() Rect { return c.windowed }

// EnterFullscreen records the current windowed placement, then enlarges
// the backbuffer and window to the bounds of the monitor the window is
// on. Already-fullscreen is a no-op so the snapshot is never overwritten
// with fullscreen geometry.
func (c *DisplayController) EnterFullscreen() {
	if c.mode == BorderlessFullscreen {
		return
	}
	c.windowed = c.currentGeometry()

	mon := c.win.MonitorBounds()
	c.renderer.ResizeBackbuffer(mon.Width, mon.Height)
	c.win.SetPosition(mon.X, mon.Y)
	c.mode = BorderlessFullscreen
	Logger().Info("entered borderless fullscreen", "monitor", mon, "windowed", c.windowed)
}

// ExitFullscreen restores the windowed snapshot verbatim. Already-windowed
// is a no-op. A degenerate snapshot (structurally prevented by seeding,
// but tolerated) falls back to the current geometry instead of failing.
func (c *DisplayController) ExitFullscreen() {
	if c.mode == Windowed {
		return
	}
	if c.windowed.Empty() {
		c.windowed = c.currentGeometry()
	}
	c.renderer.ResizeBackbuffer(c.windowed.Width, c.windowed.Height)
	c.win.SetPosition(c.windowed.X, c.windowed.Y)
	c.mode = Windowed
	Logger().Info("restored windowed mode", "geometry", c.windowed)
}

// Toggle flips the presentation mode.
func (c *DisplayController) Toggle() {
	if c.mode == Windowed {
		c.EnterFullscreen()
	} else {
		c.ExitFullscreen()
	}
}

func (c *DisplayController) currentGeometry() Rect {
	x, y := c.win.Position()
	w, h := c.win.ClientSize()
	return Rect{X: x, Y: y, Width: w, Height: h}
}
