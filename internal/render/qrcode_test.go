package render

import (
	"image/color"
	"strings"
	"testing"
)

func TestGenerateQRCodeImageEmptyPayload(t *testing.T) {
	img, err := GenerateQRCodeImage("", 128)
	if err != nil || img != nil {
		t.Fatalf("GenerateQRCodeImage(\"\") = %v, %v; want nil, nil", img, err)
	}
}

func TestGenerateQRCodeImageDefaultSize(t *testing.T) {
	img, err := GenerateQRCodeImage("https://example.com", 0)
	if err != nil {
		t.Fatalf("GenerateQRCodeImage: %v", err)
	}
	if got := img.Bounds().Dx(); got != defaultQRCodeSizePx {
		t.Errorf("width = %d, want %d", got, defaultQRCodeSizePx)
	}
}

func TestGenerateQRCodeImageTooLong(t *testing.T) {
	if _, err := GenerateQRCodeImage(strings.Repeat("x", 4000), 0); err == nil {
		t.Fatal("expected an error for a payload beyond QR capacity")
	}
}

func TestQRIconHasDarkModules(t *testing.T) {
	img := QRIcon{Payload: "com.example.model3dviewer"}.Paint(256)
	dark := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] < 0x80 {
			dark++
		}
	}
	if dark == 0 {
		t.Fatal("QR icon has no dark modules")
	}
	// The quiet zone border stays white.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("corner = %v, want white", got)
	}
}

func TestQRIconEmptyIsBlank(t *testing.T) {
	img := QRIcon{}.Paint(64)
	for i := 0; i < len(img.Pix); i++ {
		if img.Pix[i] != 0xFF {
			t.Fatalf("byte %d = %d, want blank white", i, img.Pix[i])
		}
	}
}
