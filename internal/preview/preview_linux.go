//go:build linux && cgo

package preview

import (
	"context"
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/mipmapgen/internal/system"
)

func show(ctx context.Context, sheet *image.RGBA, opts Options) error {
	dev, err := fb.Open(opts.Device)
	if err != nil {
		return err
	}
	defer dev.Close()
	bounds := dev.Bounds()
	opts.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	restore := system.EnterGraphics(opts.Logger)
	defer restore()

	blitToFB(dev, sheet)
	opts.Logger.Infof("fb", "sheet drawn, waiting %s", opts.Duration)

	waitCtx, cancel := context.WithTimeout(ctx, opts.Duration)
	defer cancel()
	system.WatchDismissKeys(waitCtx, opts.Logger, cancel)
	<-waitCtx.Done()
	return nil
}

// blitToFB copies sheet to the framebuffer with nearest-neighbour scaling.
func blitToFB(dev *fb.Device, sheet *image.RGBA) {
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	sheetWidth := sheet.Bounds().Dx()
	sheetHeight := sheet.Bounds().Dy()
	for y := 0; y < fbHeight; y++ {
		sy := (y * sheetHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * sheetWidth) / fbWidth
			pixel := sheet.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}

