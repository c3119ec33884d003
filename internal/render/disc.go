package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
)

// DiscIcon is a radial gradient disc with a translucent inset circle on top.
// Zero-valued colors fall back to DiscBase and DiscInset.
type DiscIcon struct {
	Base  color.NRGBA
	Inset color.NRGBA
}

func (d DiscIcon) Paint(size int) *image.RGBA {
	base, inset := d.Base, d.Inset
	if base == (color.NRGBA{}) {
		base = DiscBase
	}
	if inset == (color.NRGBA{}) {
		inset = DiscInset
	}

	c := NewCanvas(size)
	RadialDisc(c, base, White)
	pad := size / 6
	c.FillEllipse(layout.Box(pad, pad, size-pad, size-pad), inset)
	return c.Image()
}
