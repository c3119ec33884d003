// Package preview shows freshly generated icons side by side on the Linux
// framebuffer.
package preview

import (
	"errors"
	"image"
	"image/draw"

	"github.com/rook-computer/mipmapgen/internal/render"
	"github.com/rook-computer/mipmapgen/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ErrUnsupported is returned where no framebuffer backend is available.
var ErrUnsupported = errors.New("framebuffer preview is only supported on linux")

// Logical sheet size; scaled to the framebuffer.
const (
	SheetWidth  = 1920
	SheetHeight = 1080

	cellPadding = 24
)

// Sheet lays images out left to right in equal columns on a placeholder-grey
// background. Each image keeps its aspect ratio and is never upscaled past
// its column.
func Sheet(images []image.Image, width, height int) *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(sheet, sheet.Bounds(), image.NewUniform(render.PlaceholderBackground), image.Point{}, draw.Src)
	if len(images) == 0 {
		return sheet
	}

	for i, col := range layout.Columns(sheet.Bounds(), len(images)) {
		img := images[i]
		if img == nil {
			continue
		}
		cell := layout.FitSquare(layout.Inset(col, cellPadding))
		w, h := fitSize(img.Bounds().Dx(), img.Bounds().Dy(), cell.Dx(), cell.Dy())
		dst := layout.Center(cell, w, h)
		if dst.Empty() {
			continue
		}
		xdraw.NearestNeighbor.Scale(sheet, dst, img, img.Bounds(), xdraw.Over, nil)
	}
	return sheet
}

// fitSize scales w×h down to fit maxW×maxH, keeping the aspect ratio.
func fitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		return maxW, h * maxW / w
	}
	return w * maxH / h, maxH
}
