package render

import (
	"image"

	"github.com/rook-computer/mipmapgen/internal/render/layout"
	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// QRIcon renders Payload as a QR code on a white square. An empty or
// unencodable payload leaves the square blank; callers validate payloads up
// front with GenerateQRCodeImage.
type QRIcon struct {
	Payload string
}

func (q QRIcon) Paint(size int) *image.RGBA {
	c := NewCanvas(size)
	c.Fill(White)
	code, err := GenerateQRCodeImage(q.Payload, size)
	if err != nil || code == nil {
		return c.Image()
	}
	c.DrawImageInRect(code, layout.Inset(layout.Square(size), size/16))
	return c.Image()
}
