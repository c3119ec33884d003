package app

import (
	"image/color"

	"github.com/rook-computer/mipmapgen/internal/render"
	"github.com/rook-computer/mipmapgen/internal/res"
)

// MipmapJobs writes one disc icon named base per density bucket.
func MipmapJobs(root, base string, scheme color.NRGBA) []Job {
	icon := render.DiscIcon{Base: scheme}
	jobs := make([]Job, 0, len(res.Buckets))
	for _, bucket := range res.Buckets {
		jobs = append(jobs, Job{
			Path:    res.BucketPath(root, bucket, res.PNGName(base)),
			Size:    bucket.Size,
			Painter: icon,
		})
	}
	return jobs
}

// ResourceOptions tunes the full resource set.
type ResourceOptions struct {
	// Label is drawn under the model placeholder when set.
	Label string
	// QRPayload adds drawable/placeholder_qr.png when set.
	QRPayload string
	NoSmooth  bool
}

// ResourceJobs covers the launcher set of every bucket plus the drawables.
func ResourceJobs(root string, opts ResourceOptions) []Job {
	launcher := render.LauncherIcon{NoSmooth: opts.NoSmooth}
	background := render.SimpleIcon{Fill: render.White}

	var jobs []Job
	for _, bucket := range res.Buckets {
		for _, name := range []string{res.LauncherFile, res.LauncherRoundFile, res.LauncherForegroundFile} {
			jobs = append(jobs, Job{Path: res.BucketPath(root, bucket, name), Size: bucket.Size, Painter: launcher})
		}
		jobs = append(jobs, Job{Path: res.BucketPath(root, bucket, res.LauncherBackgroundFile), Size: bucket.Size, Painter: background})
	}

	jobs = append(jobs, Job{
		Path:    res.DrawablePath(root, res.PlaceholderFile),
		Size:    res.PlaceholderSize,
		Painter: render.Placeholder{Label: opts.Label},
	})
	for _, name := range res.SimpleIcons {
		jobs = append(jobs, Job{Path: res.DrawablePath(root, res.PNGName(name)), Size: res.SimpleIconSize, Painter: background})
	}
	if opts.QRPayload != "" {
		jobs = append(jobs, Job{
			Path:    res.DrawablePath(root, res.QRPlaceholderFile),
			Size:    res.PlaceholderSize,
			Painter: render.QRIcon{Payload: opts.QRPayload},
		})
	}
	return jobs
}
