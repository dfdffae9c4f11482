package liveresize

import (
	"math"
	"testing"
)

func TestFitExact(t *testing.T) {
	vp := NewVirtualCanvas(800, 600).Fit(800, 600)
	want := Viewport{X: 0, Y: 0, Width: 800, Height: 600}
	if vp != want {
		t.Fatalf("Fit(800,600) = %v, want %v", vp, want)
	}
}

func TestFitPillarbox(t *testing.T) {
	// scale = min(1000/800, 600/600) = 1.0 -> 800x600 with 100px side bars
	vp := NewVirtualCanvas(800, 600).Fit(1000, 600)
	want := Viewport{X: 100, Y: 0, Width: 800, Height: 600}
	if vp != want {
		t.Fatalf("Fit(1000,600) = %v, want %v", vp, want)
	}
}

func TestFitTable(t *testing.T) {
	tests := []struct {
		name   string
		vw, vh int
		w, h   int
		want   Viewport
	}{
		{"wide container letterboxes horizontally", 800, 600, 1600, 600, Viewport{400, 0, 800, 600}},
		{"tall container letterboxes vertically", 800, 600, 800, 1200, Viewport{0, 300, 800, 600}},
		{"upscale preserves ratio", 800, 600, 1600, 1200, Viewport{0, 0, 1600, 1200}},
		{"downscale preserves ratio", 800, 600, 400, 300, Viewport{0, 0, 400, 300}},
		{"single pixel container", 800, 600, 1, 1, Viewport{0, 0, 1, 1}},
		{"zero width container", 800, 600, 0, 600, Viewport{}},
		{"negative height container", 800, 600, 800, -600, Viewport{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVirtualCanvas(tt.vw, tt.vh).Fit(tt.w, tt.h)
			if got != tt.want {
				t.Fatalf("Fit(%d,%d) = %v, want %v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

// TestFitProperties checks the mapper invariants over a spread of container
// sizes: output fits the container, keeps the canvas ratio within rounding
// tolerance, and is centered.
func TestFitProperties(t *testing.T) {
	canvas := NewVirtualCanvas(640, 360)
	ratio := 640.0 / 360.0

	for w := 1; w <= 2001; w += 125 {
		for h := 1; h <= 2001; h += 125 {
			vp := canvas.Fit(w, h)
			if vp.Width > w || vp.Height > h {
				t.Fatalf("Fit(%d,%d) = %v exceeds container", w, h, vp)
			}
			if vp.X != (w-vp.Width)/2 || vp.Y != (h-vp.Height)/2 {
				t.Fatalf("Fit(%d,%d) = %v not centered", w, h, vp)
			}
			if vp.Empty() {
				continue // rounding can legitimately collapse tiny containers
			}
			got := float64(vp.Width) / float64(vp.Height)
			// One pixel of rounding slack on either dimension.
			tol := ratio * (1.0/float64(vp.Width) + 1.0/float64(vp.Height))
			if math.Abs(got-ratio) > tol+1e-9 {
				t.Fatalf("Fit(%d,%d) = %v ratio %f, want %f (tol %f)", w, h, vp, got, ratio, tol)
			}
		}
	}
}

func TestFitZeroCanvas(t *testing.T) {
	// The zero value skips NewVirtualCanvas's clamp; Fit must not divide
	// by the zero dimensions.
	var c VirtualCanvas
	if vp := c.Fit(100, 100); vp != (Viewport{}) {
		t.Fatalf("Fit on zero canvas = %v, want empty viewport", vp)
	}
}

func TestNewVirtualCanvasClampsDegenerate(t *testing.T) {
	c := NewVirtualCanvas(0, -5)
	w, h := c.Size()
	if w != 1 || h != 1 {
		t.Fatalf("Size() = %dx%d, want 1x1", w, h)
	}
	if vp := c.Fit(100, 100); vp.Empty() {
		t.Fatalf("Fit on clamped canvas returned empty viewport %v", vp)
	}
}
