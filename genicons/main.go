// Command genicons writes the full placeholder resource set: adaptive launcher
// icons for every density bucket plus the drawable placeholders.
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
	"path/filepath"
	"syscall"

	"github.com/rook-computer/mipmapgen/internal/app"
	"github.com/rook-computer/mipmapgen/internal/preview"
	"github.com/rook-computer/mipmapgen/internal/render"
	"github.com/rook-computer/mipmapgen/internal/res"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults, err := app.DefaultConfigFromEnv(res.DefaultRoot)
	if err != nil {
		fmt.Fprintln(stderr, "config error:", err)
		return 1
	}

	flags := flag.NewFlagSet("genicons", flag.ContinueOnError)
	flags.SetOutput(stderr)
	resRoot := flags.String("res", defaults.ResRoot, "resource root to write into; also configurable via "+app.EnvResRoot)
	label := flags.String("label", "", "caption drawn under the model placeholder (optional)")
	qrPayload := flags.String("qr", "", "also write drawable/"+res.QRPlaceholderFile+" encoding this payload (optional)")
	noSmooth := flags.Bool("no-smooth", false, "skip the smoothing pass on launcher icons")
	debug := flags.Bool("debug", defaults.Debug, "enable debug logging to "+app.DebugLogPath+"; also configurable via "+app.EnvDebug)
	stdioLog := flags.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+app.EnvStdioLog)
	showPreview := flags.Bool("preview", false, "show the launcher icons on the framebuffer when done")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *qrPayload != "" {
		if _, err := render.GenerateQRCodeImage(*qrPayload, 0); err != nil {
			fmt.Fprintln(stderr, "qr payload error:", err)
			return 1
		}
	}

	logger, release := app.Setup(app.Config{Debug: *debug, StdioLog: *stdioLog}, stderr)
	defer release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sheet preview.Collector
	a := app.New(logger)
	a.OnWrite = func(job app.Job, img *image.RGBA) {
		fmt.Fprintf(stdout, "generated %s (%dx%d)\n", job.Path, job.Size, job.Size)
		if *showPreview && filepath.Base(job.Path) == res.LauncherFile {
			sheet.Add(img)
		}
	}
	jobs := app.ResourceJobs(*resRoot, app.ResourceOptions{Label: *label, QRPayload: *qrPayload, NoSmooth: *noSmooth})
	if err := a.Run(ctx, jobs); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	fmt.Fprintf(stdout, "\nall %d icons generated under %s\n", len(a.Written()), *resRoot)

	if *showPreview {
		if err := preview.Show(ctx, sheet.Images(), preview.Options{Logger: logger}); err != nil {
			fmt.Fprintln(stderr, "preview error:", err)
		}
	}
	return 0
}
