package liveresize

import "math"

// VirtualCanvas is the application's fixed native rendering resolution.
// It is immutable for the lifetime of the process.
type VirtualCanvas struct {
	width  int
	height int
}

// NewVirtualCanvas returns a canvas with the given virtual resolution.
// Non-positive dimensions are clamped to 1 so that Fit never divides by zero.
func NewVirtualCanvas(width, height int) VirtualCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return VirtualCanvas{width: width, height: height}
}

// Size returns the virtual resolution.
func (c VirtualCanvas) Size() (width, height int) { return c.width, c.height }

// Fit computes the largest centered viewport inside a container of the
// given size that preserves the canvas aspect ratio. The result is what a
// renderer letterboxes (or pillarboxes) its output into.
//
// Fit is pure and cheap; callers recompute it on every frame so the black
// bars never lag the true window edge. A container with a non-positive
// dimension yields a zero-area viewport, as does a degenerate canvas
// (the zero VirtualCanvas, bypassing NewVirtualCanvas's clamp).
func (c VirtualCanvas) Fit(containerW, containerH int) Viewport {
	if containerW <= 0 || containerH <= 0 {
		return Viewport{}
	}
	if c.width <= 0 || c.height <= 0 {
		return Viewport{}
	}

	scale := math.Min(
		float64(containerW)/float64(c.width),
		float64(containerH)/float64(c.height),
	)

	outW := int(math.Round(float64(c.width) * scale))
	outH := int(math.Round(float64(c.height) * scale))

	return Viewport{
		X:      (containerW - outW) / 2,
		Y:      (containerH - outH) / 2,
		Width:  outW,
		Height: outH,
	}
}
