package render

import (
	"image"
	"image/color"
	"image/draw"
)

// 3x3 smoothing kernel: every neighbour weighs 1, the center weighs smoothCenter.
const (
	smoothCenter = 5
	smoothWeight = 8 + smoothCenter
)

// Smooth returns a softened copy of src. Each band of the straight-alpha
// image is filtered on its own, so color bleeds from transparent neighbours
// darken soft edges. The outermost rows and columns are copied unfiltered.
func Smooth(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(b)
	if b.Empty() {
		return dst
	}
	draw.Draw(dst, b, src, b.Min, draw.Src)
	if b.Dx() < 3 || b.Dy() < 3 {
		return dst
	}

	straight := make([][4]int, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			straight[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] = unpremultiply(src.RGBAAt(x, y))
		}
	}

	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			var sum [4]int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					weight := 1
					if dx == 0 && dy == 0 {
						weight = smoothCenter
					}
					px := straight[(y+dy-b.Min.Y)*b.Dx()+(x+dx-b.Min.X)]
					for ch := 0; ch < 4; ch++ {
						sum[ch] += weight * px[ch]
					}
				}
			}
			var out [4]int
			for ch := 0; ch < 4; ch++ {
				out[ch] = int(clampChannel((sum[ch] + smoothWeight/2) / smoothWeight))
			}
			dst.SetRGBA(x, y, premultiply(out))
		}
	}
	return dst
}

func unpremultiply(c color.RGBA) [4]int {
	a := int(c.A)
	if a == 0 {
		return [4]int{}
	}
	return [4]int{
		(int(c.R)*0xFF + a/2) / a,
		(int(c.G)*0xFF + a/2) / a,
		(int(c.B)*0xFF + a/2) / a,
		a,
	}
}

func premultiply(c [4]int) color.RGBA {
	a := c[3]
	return color.RGBA{
		R: uint8((c[0]*a + 0x7F) / 0xFF),
		G: uint8((c[1]*a + 0x7F) / 0xFF),
		B: uint8((c[2]*a + 0x7F) / 0xFF),
		A: uint8(a),
	}
}

// CompositeOver draws src over dst in place.
func CompositeOver(dst *image.RGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
}
