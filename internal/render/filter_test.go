package render

import (
	"image"
	"image/color"
	"testing"
)

func TestSmoothUniformStaysUniform(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 6))
	fill := color.RGBA{R: 40, G: 80, B: 120, A: 200}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			src.SetRGBA(x, y, fill)
		}
	}
	out := Smooth(src)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			if got := out.RGBAAt(x, y); got != fill {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, fill)
			}
		}
	}
}

func TestSmoothImpulse(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	src.SetRGBA(2, 2, color.RGBA{A: 255})
	out := Smooth(src)

	// (5*255 + 6) / 13 and (255 + 6) / 13
	if got := out.RGBAAt(2, 2).A; got != 98 {
		t.Errorf("center alpha = %d, want 98", got)
	}
	if got := out.RGBAAt(1, 1).A; got != 20 {
		t.Errorf("neighbour alpha = %d, want 20", got)
	}
	if got := out.RGBAAt(0, 0).A; got != 0 {
		t.Errorf("far alpha = %d, want 0", got)
	}
	if got := src.RGBAAt(2, 2).A; got != 255 {
		t.Errorf("source modified: %d", got)
	}
}

func TestSmoothFiltersStraightAlpha(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	src.SetRGBA(2, 2, white)
	out := Smooth(src)

	// Color and alpha both spread to 98, so the premultiplied color is 98*98/255.
	if got, want := out.RGBAAt(2, 2), (color.RGBA{R: 38, G: 38, B: 38, A: 98}); got != want {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestSmoothCopiesBorder(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	src.SetRGBA(0, 2, white)
	out := Smooth(src)

	if got := out.RGBAAt(0, 2); got != white {
		t.Errorf("border = %v, want %v unfiltered", got, white)
	}
	if got, want := out.RGBAAt(1, 2), (color.RGBA{R: 2, G: 2, B: 2, A: 20}); got != want {
		t.Errorf("inner neighbour = %v, want %v", got, want)
	}
	if got := out.RGBAAt(0, 1); got.A != 0 {
		t.Errorf("border below impulse = %v, want untouched", got)
	}
}

func TestSmoothTinyImageUnchanged(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{A: 255})
	out := Smooth(src)
	if got := out.RGBAAt(0, 0).A; got != 255 {
		t.Errorf("alpha = %d, want 255", got)
	}
}

func TestSmoothEmpty(t *testing.T) {
	if got := Smooth(image.NewRGBA(image.Rectangle{})); !got.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", got.Bounds())
	}
}

func TestCompositeOver(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 1))
	dst.SetRGBA(0, 0, color.RGBA{A: 50})
	dst.SetRGBA(1, 0, color.RGBA{A: 50})
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	CompositeOver(dst, src)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("covered = %v, want opaque white", got)
	}
	if got := dst.RGBAAt(1, 0); got != (color.RGBA{A: 50}) {
		t.Errorf("uncovered = %v, want shadow kept", got)
	}
}
