package render

import (
	"image"
)

// Captions are skipped on canvases too small to hold legible text.
const minCaptionSize = 96

// Placeholder is the opaque model-preview stand-in: a light grid with a
// centered cube and an optional caption along the bottom edge.
type Placeholder struct {
	Label string
}

func (p Placeholder) Paint(size int) *image.RGBA {
	c := NewCanvas(size)
	c.Fill(PlaceholderBackground)

	if grid := size / 8; grid > 0 {
		for i := 0; i < size; i += grid {
			c.FillRect(image.Rect(i, 0, i+1, size), PlaceholderGrid)
			c.FillRect(image.Rect(0, i, size, i+1), PlaceholderGrid)
		}
	}

	edge := size / 4
	origin := (size - edge) / 2
	cube := Cube{X: origin, Y: origin, Edge: edge, Depth: edge / 2, Skew: edge / 2, Right: RightFaceBoxed}
	c.FillCube(cube, PlaceholderFront, PlaceholderTop, PlaceholderRight)

	if p.Label != "" && size >= minCaptionSize {
		c.DrawTextCentered(p.Label, size-size/16, float64(size)/16, PlaceholderCaption)
	}
	return c.Image()
}
