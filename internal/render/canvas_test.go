package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
)

func TestFillReplacesInsteadOfBlending(t *testing.T) {
	c := NewCanvas(16)
	c.Fill(White)
	c.FillEllipse(layout.Box(0, 0, 15, 15), color.NRGBA{R: 255, G: 255, B: 255, A: 100})
	if got, want := c.Image().RGBAAt(8, 8), (color.RGBA{R: 100, G: 100, B: 100, A: 100}); got != want {
		t.Errorf("center = %v, want %v", got, want)
	}
}

func TestFillPolygonNeedsThreePoints(t *testing.T) {
	c := NewCanvas(8)
	c.FillPolygon([]image.Point{image.Pt(0, 0), image.Pt(7, 7)}, White)
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("degenerate polygon painted pixels")
		}
	}
}

func TestFillRectClips(t *testing.T) {
	c := NewCanvas(4)
	c.FillRect(image.Rect(-2, -2, 2, 2), White)
	img := c.Image()
	if got := img.RGBAAt(1, 1); got.A != 0xFF {
		t.Errorf("(1,1) = %v, want painted", got)
	}
	if got := img.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("(2,2) = %v, want untouched", got)
	}
}

func TestFillRoundedRectCorners(t *testing.T) {
	c := NewCanvas(40)
	c.FillRoundedRect(layout.Box(0, 0, 39, 39), 12, White)
	img := c.Image()
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want cut away", got)
	}
	if got := img.RGBAAt(20, 0); got.A != 0xFF {
		t.Errorf("top edge = %v, want filled", got)
	}
	if got := img.RGBAAt(20, 20); got.A != 0xFF {
		t.Errorf("center = %v, want filled", got)
	}
}

func TestDrawImageInRect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	c := NewCanvas(8)
	c.DrawImageInRect(src, image.Rect(0, 0, 8, 8))
	if got := c.Image().RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("scaled pixel = %v", got)
	}
	if got := c.Image().RGBAAt(6, 6); got.A != 0 {
		t.Errorf("scaled pixel = %v, want transparent", got)
	}
	c.DrawImageInRect(nil, image.Rect(0, 0, 8, 8))
}

func TestDrawTextCenteredEmpty(t *testing.T) {
	c := NewCanvas(32)
	c.DrawTextCentered("", 20, 12, White)
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("empty text painted pixels")
		}
	}
}
