//go:build !linux || !cgo

package preview

import (
	"context"
	"image"
)

func show(ctx context.Context, sheet *image.RGBA, opts Options) error {
	opts.Logger.Errorf("fb", "%v", ErrUnsupported)
	return ErrUnsupported
}
