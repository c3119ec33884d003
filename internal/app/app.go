package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/rook-computer/mipmapgen/internal/render"
	"github.com/rook-computer/mipmapgen/internal/res"
)

// ErrInvalidSize is returned for jobs whose edge length is not positive.
var ErrInvalidSize = errors.New("icon size must be positive")

// Job renders one icon at Size and writes it to Path.
type Job struct {
	Path    string
	Size    int
	Painter render.Painter
}

// App runs generation jobs one after another.
type App struct {
	Logger Logger
	// OnWrite is called after each file has been written successfully.
	OnWrite func(job Job, img *image.RGBA)

	written []string
}

func New(logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	return &App{Logger: logger}
}

// Run renders and writes jobs in order. It stops at the first failure or when
// ctx is cancelled; files written before that stay on disk.
func (app *App) Run(ctx context.Context, jobs []Job) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	app.Logger.Infof("app", "running %d jobs", len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := app.runJob(job); err != nil {
			app.Logger.Errorf("app", "%v", err)
			return err
		}
	}
	return nil
}

// Written returns the paths written so far, in order.
func (app *App) Written() []string {
	out := make([]string, len(app.written))
	copy(out, app.written)
	return out
}

func (app *App) runJob(job Job) error {
	if job.Size <= 0 {
		return fmt.Errorf("%s: %w (got %d)", job.Path, ErrInvalidSize, job.Size)
	}
	if job.Painter == nil {
		return fmt.Errorf("%s: no painter", job.Path)
	}
	img := job.Painter.Paint(job.Size)
	if err := res.WritePNG(job.Path, img); err != nil {
		return err
	}
	app.written = append(app.written, job.Path)
	app.Logger.Infof("app", "wrote %s (%dx%d)", job.Path, job.Size, job.Size)
	if app.OnWrite != nil {
		app.OnWrite(job, img)
	}
	return nil
}
