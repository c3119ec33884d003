package render

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"
)

// Palette used by the shipped painters. Colors are non-premultiplied so a
// translucent white keeps its full channel values.
var (
	// Disc icon base color, #6200ee.
	DiscBase  = color.NRGBA{R: 98, G: 0, B: 238, A: 0xFF}
	DiscInset = color.NRGBA{R: 255, G: 255, B: 255, A: 200}

	// Launcher gradient runs from LauncherInner (first ring) to LauncherOuter.
	LauncherInner = color.NRGBA{R: 66, G: 133, B: 244, A: 0xFF}
	LauncherOuter = color.NRGBA{R: 100, G: 181, B: 246, A: 0xFF}
	LauncherShade = color.NRGBA{A: 50}

	TileDefault = color.NRGBA{R: 66, G: 133, B: 244, A: 0xFF}

	PlaceholderBackground = color.NRGBA{R: 240, G: 240, B: 245, A: 0xFF}
	PlaceholderGrid       = color.NRGBA{R: 220, G: 220, B: 230, A: 0xFF}
	PlaceholderCaption    = color.NRGBA{R: 120, G: 120, B: 140, A: 0xFF}
	PlaceholderFront      = color.NRGBA{R: 100, G: 150, B: 255, A: 0xFF}
	PlaceholderTop        = color.NRGBA{R: 150, G: 180, B: 255, A: 0xFF}
	PlaceholderRight      = color.NRGBA{R: 80, G: 120, B: 220, A: 0xFF}

	White = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Launcher geometry as fractions of the icon size.
const (
	launcherSafeZone = 0.66
	launcherCube     = 0.5
)

// ParseHexColor parses an opaque RRGGBB color, with or without a leading '#'.
func ParseHexColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want RRGGBB", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xFF}, nil
}
