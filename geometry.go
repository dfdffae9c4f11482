package liveresize

import "fmt"

// Rect is a position and size in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Viewport is the letterboxed destination rectangle within the window
// client area. It has no identity beyond "latest computed value"; callers
// recompute it every frame.
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", v.X, v.Y, v.Width, v.Height)
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool { return v.Width <= 0 || v.Height <= 0 }
