package preview

import (
	"context"
	"image"
	"time"
)

// DefaultDuration is how long the sheet stays up unless dismissed.
const DefaultDuration = 5 * time.Second

// Logger is the component-tagged logger used by the app.
type Logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// Options controls a preview run.
type Options struct {
	Device   string
	Duration time.Duration
	Logger   Logger
}

// Collector gathers rendered icons in the order they were written.
type Collector struct {
	images []image.Image
}

func (c *Collector) Add(img image.Image) {
	if img != nil {
		c.images = append(c.images, img)
	}
}

func (c *Collector) Images() []image.Image { return c.images }

// Show renders images as a contact sheet on the framebuffer and keeps it up
// until opts.Duration passes, a dismiss key is pressed, or ctx is done.
func Show(ctx context.Context, images []image.Image, opts Options) error {
	if opts.Device == "" {
		opts.Device = "/dev/fb0"
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultDuration
	}
	if opts.Logger == nil {
		opts.Logger = noopLogger{}
	}
	return show(ctx, Sheet(images, SheetWidth, SheetHeight), opts)
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}
