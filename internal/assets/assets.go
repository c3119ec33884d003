package assets

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF is the caption font shipped with the binary (Go Regular).
var FontTTF = goregular.TTF

var (
	fontOnce sync.Once
	font     *truetype.Font
	fontErr  error
)

// Font returns the parsed caption font. Parsing happens once per process.
func Font() (*truetype.Font, error) {
	fontOnce.Do(func() {
		font, fontErr = truetype.Parse(FontTTF)
	})
	return font, fontErr
}
