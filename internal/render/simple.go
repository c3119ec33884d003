package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
)

// SimpleIcon is a rounded tile with a small white cube. Fill is always drawn
// opaque; a zero Fill uses TileDefault.
type SimpleIcon struct {
	Fill color.NRGBA
}

func (s SimpleIcon) Paint(size int) *image.RGBA {
	fill := s.Fill
	if fill == (color.NRGBA{}) {
		fill = TileDefault
	}

	c := NewCanvas(size)
	margin := size / 8
	c.FillRoundedRect(layout.Box(margin, margin, size-margin, size-margin), size/4, withAlpha(fill, 0xFF))

	edge := size / 3
	origin := (size - edge) / 2
	cube := Cube{X: origin, Y: origin, Edge: edge, Depth: edge / 2, Skew: edge / 4, Right: RightFaceBoxed}
	c.FillCube(cube, withAlpha(White, 240), withAlpha(White, 200), withAlpha(White, 160))
	return c.Image()
}
