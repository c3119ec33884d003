// Command mipmapgen writes a gradient disc launcher icon into every mipmap
// density bucket of an Android resource root.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/mipmapgen/internal/app"
	"github.com/rook-computer/mipmapgen/internal/preview"
	"github.com/rook-computer/mipmapgen/internal/render"
)

const usage = "Usage: mipmapgen [flags] <res_root> <base_name>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults, err := app.DefaultConfigFromEnv("")
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 1
	}

	flags := flag.NewFlagSet("mipmapgen", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, usage)
		flags.PrintDefaults()
	}
	colorHex := flags.String("color", "6200ee", "base color of the gradient disc as RRGGBB")
	debug := flags.Bool("debug", defaults.Debug, "enable debug logging to "+app.DebugLogPath+"; also configurable via "+app.EnvDebug)
	stdioLog := flags.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+app.EnvStdioLog)
	showPreview := flags.Bool("preview", false, "show the generated icons on the framebuffer when done")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	resRoot, base := flags.Arg(0), flags.Arg(1)

	scheme, err := render.ParseHexColor(*colorHex)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, release := app.Setup(app.Config{Debug: *debug, StdioLog: *stdioLog}, stderr)
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sheet preview.Collector
	a := app.New(logger)
	a.OnWrite = func(job app.Job, img *image.RGBA) {
		fmt.Fprintln(stdout, "Wrote", job.Path)
		if *showPreview {
			sheet.Add(img)
		}
	}
	if err := a.Run(ctx, app.MipmapJobs(resRoot, base, scheme)); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	if *showPreview {
		if err := preview.Show(ctx, sheet.Images(), preview.Options{Logger: logger}); err != nil {
			fmt.Fprintln(stderr, "preview error:", err)
		}
	}
	return 0
}
