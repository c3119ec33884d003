package render

import (
	"image"
)

// Painter draws one icon style onto a fresh size×size canvas.
// Painters are pure: the same fields and size always yield the same pixels.
type Painter interface {
	Paint(size int) *image.RGBA
}

var (
	_ Painter = DiscIcon{}
	_ Painter = LauncherIcon{}
	_ Painter = SimpleIcon{}
	_ Painter = Placeholder{}
	_ Painter = QRIcon{}
)

// RightFace selects how the right-hand face of a Cube is drawn.
type RightFace int

const (
	// RightFaceSlanted tapers the right face back toward the top-rear edge.
	RightFaceSlanted RightFace = iota
	// RightFaceBoxed keeps the right face as a parallelogram.
	RightFaceBoxed
)

// Cube describes the three visible faces of a pseudo-isometric cube.
// X, Y is the top-left of the cube's bounding square, Edge its side, Depth the
// height of the top face and Skew how far the rear edge shifts right.
type Cube struct {
	X, Y  int
	Edge  int
	Depth int
	Skew  int
	Right RightFace
}

// Front returns the front face polygon.
func (cube Cube) Front() []image.Point {
	x, y, s, d := cube.X, cube.Y, cube.Edge, cube.Depth
	return []image.Point{image.Pt(x, y+d), image.Pt(x+s, y+d), image.Pt(x+s, y+s), image.Pt(x, y+s)}
}

// Top returns the top face polygon.
func (cube Cube) Top() []image.Point {
	x, y, s, d, k := cube.X, cube.Y, cube.Edge, cube.Depth, cube.Skew
	return []image.Point{image.Pt(x+k, y), image.Pt(x+k+s, y), image.Pt(x+s, y+d), image.Pt(x, y+d)}
}

// Side returns the right face polygon.
func (cube Cube) Side() []image.Point {
	x, y, s, d, k := cube.X, cube.Y, cube.Edge, cube.Depth, cube.Skew
	if cube.Right == RightFaceSlanted {
		return []image.Point{image.Pt(x+k+s, y), image.Pt(x+s, y+d), image.Pt(x+s, y+s), image.Pt(x+k+s, y+s-d)}
	}
	return []image.Point{image.Pt(x+k+s, y), image.Pt(x+s+k, y+d), image.Pt(x+s, y+s), image.Pt(x+s, y+d)}
}
