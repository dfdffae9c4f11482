package liveresize

import "testing"

// fakeToggle is edge-triggered: each queued press reports true once.
type fakeToggle struct {
	presses int
}

func (t *fakeToggle) TogglePressed() bool {
	if t.presses > 0 {
		t.presses--
		return true
	}
	return false
}

// fakeHook records installation and replays messages into the handler.
type fakeHook struct {
	handler   func(Message) uintptr
	ticker    *manualTicker
	installs  int
	forwards  int
	installed bool
	failWith  error
}

func (h *fakeHook) Install(handler func(Message) uintptr) error {
	if h.failWith != nil {
		return h.failWith
	}
	h.installs++
	h.installed = true
	h.handler = handler
	return nil
}

func (h *fakeHook) Uninstall() {
	h.installed = false
	h.handler = nil
}

func (h *fakeHook) ForwardToOriginal(Message) uintptr {
	h.forwards++
	return 0
}

func (h *fakeHook) Ticker() TickSource { return h.ticker }

func (h *fakeHook) send(code uint32) {
	if h.handler != nil {
		h.handler(Message{Code: code})
	}
}

func TestSessionFrame(t *testing.T) {
	win := &fakeWindow{clientW: 1000, clientH: 600, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 1000, h: 600}
	sess := NewSession(win, ren, NewVirtualCanvas(800, 600), nil)

	sess.Frame()
	if ren.frames != 1 {
		t.Fatalf("frames = %d, want 1", ren.frames)
	}
	if ren.vp != (Viewport{100, 0, 800, 600}) {
		t.Fatalf("viewport = %v, want (100,0 800x600)", ren.vp)
	}

	// Shrinking the client area must move the bars on the very next frame.
	win.clientW, win.clientH = 800, 600
	sess.Frame()
	if ren.vp != (Viewport{0, 0, 800, 600}) {
		t.Fatalf("viewport = %v, want exact fit after resize", ren.vp)
	}
}

func TestSessionToggleDrivenFromUpdateStep(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, x: 100, y: 100, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	toggle := &fakeToggle{presses: 1}
	sess := NewSession(win, ren, NewVirtualCanvas(800, 600), toggle)

	sess.Frame()
	if sess.Display().Mode() != BorderlessFullscreen {
		t.Fatalf("mode = %v, want fullscreen after toggle press", sess.Display().Mode())
	}
	// The press was edge-triggered: the next frame must not toggle back.
	sess.Frame()
	if sess.Display().Mode() != BorderlessFullscreen {
		t.Fatal("second frame without a press must not toggle")
	}
}

func TestSessionHookDrivesPump(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	hook := &fakeHook{ticker: &manualTicker{}}
	sess := NewSession(win, ren, NewVirtualCanvas(800, 600), nil, WithHook(hook))

	if err := sess.InstallHook(); err != nil {
		t.Fatalf("InstallHook: %v", err)
	}

	hook.send(MsgEnterSizeMove)
	if !sess.Pump().Active() {
		t.Fatal("pump should be active after WM_ENTERSIZEMOVE")
	}

	win.clientW = 900
	hook.ticker.fire()
	if ren.w != 900 {
		t.Fatalf("backbuffer width = %d, want synced 900", ren.w)
	}
	if ren.frames != 1 {
		t.Fatalf("frames = %d, want one per tick", ren.frames)
	}

	hook.send(MsgExitSizeMove)
	if sess.Pump().Active() {
		t.Fatal("pump should stop on WM_EXITSIZEMOVE")
	}

	// Unrelated messages reach the original procedure.
	if hook.forwards != 2 {
		t.Fatalf("forwards = %d, want 2 (both size-move messages)", hook.forwards)
	}
	hook.send(0x0005)
	if hook.forwards != 3 {
		t.Fatalf("forwards = %d, want unconditional forwarding", hook.forwards)
	}
}

func TestSessionDegradedWithoutHook(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	sess := NewSession(win, ren, NewVirtualCanvas(800, 600), nil)

	if err := sess.InstallHook(); err == nil {
		t.Fatal("InstallHook without a native hook must report ErrHookInstall")
	}
	// Degraded, not broken: frames still run.
	sess.Frame()
	if ren.frames != 1 {
		t.Fatalf("frames = %d, want 1 in degraded mode", ren.frames)
	}
}

func TestSessionUninstallStopsActivePump(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	hook := &fakeHook{ticker: &manualTicker{}}
	sess := NewSession(win, ren, NewVirtualCanvas(800, 600), nil, WithHook(hook))

	if err := sess.InstallHook(); err != nil {
		t.Fatalf("InstallHook: %v", err)
	}
	hook.send(MsgEnterSizeMove)
	sess.UninstallHook()
	if sess.Pump().Active() {
		t.Fatal("pump should be stopped by UninstallHook")
	}
	if hook.installed {
		t.Fatal("hook should be uninstalled")
	}
}

func TestClampFPS(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{60, 60},
		{1, 1},
		{1000, 1000},
		{0, 60},
		{-10, 60},
		{1001, 1000},
		{5000, 1000},
	}
	for _, tt := range tests {
		if got := clampFPS(tt.in); got != tt.want {
			t.Errorf("clampFPS(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
