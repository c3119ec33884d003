package layout

import "image"

// Box returns the rectangle covering the inclusive pixel range [x0,x1]×[y0,y1].
// Icon geometry is written with inclusive corners; image.Rectangle is half-open.
func Box(x0, y0, x1, y1 int) image.Rectangle {
	return Normalize(image.Rectangle{
		Min: image.Point{X: x0, Y: y0},
		Max: image.Point{X: x1 + 1, Y: y1 + 1},
	})
}

// Square returns the full canvas rectangle for a size×size icon.
func Square(size int) image.Rectangle {
	if size < 0 {
		size = 0
	}
	return image.Rect(0, 0, size, size)
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx >= rect.Dx() || 2*paddingPx >= rect.Dy() {
		center := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
		return image.Rectangle{Min: center, Max: center}
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	width := rect.Dx()
	if leftWidthPx < 0 {
		leftWidthPx = 0
	}
	if leftWidthPx > width {
		leftWidthPx = width
	}
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// Columns splits rect into n side-by-side columns. The last column absorbs
// the remainder when the width does not divide evenly.
func Columns(rect image.Rectangle, n int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	rect = Normalize(rect)
	cols := make([]image.Rectangle, 0, n)
	colWidth := rect.Dx() / n
	rest := rect
	for i := 0; i < n-1; i++ {
		var col image.Rectangle
		col, rest = SplitVertical(rest, colWidth)
		cols = append(cols, col)
	}
	return append(cols, rest)
}

// Center returns a widthPx×heightPx rectangle centered in rect, clamped to rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	widthPx = clamp(widthPx, 0, rect.Dx())
	heightPx = clamp(heightPx, 0, rect.Dy())
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// FitSquare returns the largest square that fits into rect, centered.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	return Center(rect, size, size)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
