package render

import (
	"image"
	"image/color"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
)

// LauncherIcon is the adaptive launcher artwork: a gradient disc inside the
// safe zone, a white cube, a soft ground shadow and a final smoothing pass.
type LauncherIcon struct {
	NoSmooth bool
}

func (l LauncherIcon) Paint(size int) *image.RGBA {
	c := NewCanvas(size)

	safe := int(float64(size) * launcherSafeZone)
	off := (size - safe) / 2
	for i := 0; i < safe; i++ {
		ring := Mix(LauncherOuter, LauncherInner, float64(i)/float64(safe))
		c.FillEllipse(layout.Box(off+i/2, off+i/2, size-off-i/2, size-off-i/2), ring)
	}

	edge := int(float64(safe) * launcherCube)
	origin := (size - edge) / 2
	cube := Cube{X: origin, Y: origin, Edge: edge, Depth: edge / 3, Skew: edge / 4, Right: RightFaceSlanted}
	c.FillCube(cube, withAlpha(White, 230), withAlpha(White, 200), withAlpha(White, 180))

	shadow := NewCanvas(size)
	shadow.FillEllipse(layout.Box(off-5, size-off-10, size-off+5, size-off+10), LauncherShade)
	CompositeOver(shadow.Image(), c.Image())

	if l.NoSmooth {
		return shadow.Image()
	}
	return Smooth(shadow.Image())
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
