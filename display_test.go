package liveresize

import "testing"

func TestFullscreenRoundTrip(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, x: 100, y: 100, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	ctl := NewDisplayController(win, ren)

	ctl.Toggle()
	if ctl.Mode() != BorderlessFullscreen {
		t.Fatalf("mode = %v, want borderless fullscreen", ctl.Mode())
	}
	if ren.w != 1920 || ren.h != 1080 {
		t.Fatalf("backbuffer = %dx%d, want 1920x1080", ren.w, ren.h)
	}
	if win.x != 0 || win.y != 0 {
		t.Fatalf("window at (%d,%d), want monitor origin (0,0)", win.x, win.y)
	}

	ctl.Toggle()
	if ctl.Mode() != Windowed {
		t.Fatalf("mode = %v, want windowed", ctl.Mode())
	}
	if ren.w != 800 || ren.h != 600 {
		t.Fatalf("backbuffer = %dx%d, want restored 800x600", ren.w, ren.h)
	}
	if win.x != 100 || win.y != 100 {
		t.Fatalf("window at (%d,%d), want restored (100,100)", win.x, win.y)
	}
}

func TestFullscreenOnSecondaryMonitor(t *testing.T) {
	// Monitor to the right of a 1920-wide primary.
	win := &fakeWindow{clientW: 640, clientH: 480, x: 2000, y: 50, monitor: Rect{1920, 0, 2560, 1440}}
	ren := &fakeRenderer{w: 640, h: 480}
	ctl := NewDisplayController(win, ren)

	ctl.EnterFullscreen()
	if win.x != 1920 || win.y != 0 {
		t.Fatalf("window at (%d,%d), want secondary monitor origin (1920,0)", win.x, win.y)
	}
	if ren.w != 2560 || ren.h != 1440 {
		t.Fatalf("backbuffer = %dx%d, want 2560x1440", ren.w, ren.h)
	}

	ctl.ExitFullscreen()
	if win.x != 2000 || win.y != 50 || ren.w != 640 || ren.h != 480 {
		t.Fatalf("restore gave (%d,%d) %dx%d, want (2000,50) 640x480", win.x, win.y, ren.w, ren.h)
	}
}

func TestEnterFullscreenIdempotent(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, x: 100, y: 100, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	ctl := NewDisplayController(win, ren)

	ctl.EnterFullscreen()
	resizes := len(ren.resizes)
	ctl.EnterFullscreen()
	if len(ren.resizes) != resizes {
		t.Fatal("second EnterFullscreen must be a no-op")
	}
	// The snapshot must still be the genuine windowed geometry, not the
	// fullscreen placement.
	if got := ctl.WindowedGeometry(); got != (Rect{100, 100, 800, 600}) {
		t.Fatalf("snapshot = %v, want (100,100 800x600)", got)
	}
}

func TestExitFullscreenBeforeEnter(t *testing.T) {
	win := &fakeWindow{clientW: 800, clientH: 600, x: 30, y: 40, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 800, h: 600}
	ctl := NewDisplayController(win, ren)

	// Windowed already: nothing to restore, nothing to do.
	ctl.ExitFullscreen()
	if len(ren.resizes) != 0 || len(win.positionSets) != 0 {
		t.Fatal("ExitFullscreen while windowed must be a no-op")
	}
}

func TestSnapshotSeededAtConstruction(t *testing.T) {
	win := &fakeWindow{clientW: 1024, clientH: 768, x: 7, y: 9, monitor: Rect{0, 0, 1920, 1080}}
	ren := &fakeRenderer{w: 1024, h: 768}
	ctl := NewDisplayController(win, ren)

	if got := ctl.WindowedGeometry(); got != (Rect{7, 9, 1024, 768}) {
		t.Fatalf("seeded snapshot = %v, want (7,9 1024x768)", got)
	}
}
