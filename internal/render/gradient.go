package render

import (
	"image/color"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
)

// Mix blends a and b per channel as int(a*ratio + b*(1-ratio)). The result is
// truncated, not rounded, and clamped to [0,255]; ratio is clamped to [0,1].
func Mix(a, b color.NRGBA, ratio float64) color.NRGBA {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return color.NRGBA{
		R: mixChannel(a.R, b.R, ratio),
		G: mixChannel(a.G, b.G, ratio),
		B: mixChannel(a.B, b.B, ratio),
		A: mixChannel(a.A, b.A, ratio),
	}
}

func mixChannel(a, b uint8, ratio float64) uint8 {
	return clampChannel(int(float64(a)*ratio + float64(b)*(1-ratio)))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 0xFF {
		return 0xFF
	}
	return uint8(v)
}

// RadialDisc paints concentric rings from radius size/2 down to 1. Ring i
// uses ratio i/(size/2), so the outermost ring is base and the rings converge
// on edge toward the center.
func RadialDisc(c *Canvas, base, edge color.NRGBA) {
	size := c.Size()
	half := size / 2
	denom := float64(size) / 2
	for i := half; i > 0; i-- {
		ring := Mix(base, edge, float64(i)/denom)
		c.FillEllipse(layout.Box(half-i, half-i, half+i, half+i), ring)
	}
}
