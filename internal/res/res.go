// Package res knows the Android resource tree layout the generated icons land in.
package res

import (
	"path/filepath"
)

// Bucket is a density-qualified resource directory and the launcher icon
// edge length it expects.
type Bucket struct {
	Dir  string
	Size int
}

// Buckets lists the launcher densities from mdpi to xxxhdpi.
var Buckets = []Bucket{
	{Dir: "mipmap-mdpi", Size: 48},
	{Dir: "mipmap-hdpi", Size: 72},
	{Dir: "mipmap-xhdpi", Size: 96},
	{Dir: "mipmap-xxhdpi", Size: 144},
	{Dir: "mipmap-xxxhdpi", Size: 192},
}

const (
	DrawableDir = "drawable"

	PlaceholderSize = 512
	SimpleIconSize  = 96

	// DefaultRoot is the resource root of a standard Gradle app module.
	DefaultRoot = "app/src/main/res"
)

const (
	LauncherFile           = "ic_launcher.png"
	LauncherRoundFile      = "ic_launcher_round.png"
	LauncherForegroundFile = "ic_launcher_foreground.png"
	LauncherBackgroundFile = "ic_launcher_background.png"
	PlaceholderFile        = "placeholder_model.png"
	QRPlaceholderFile      = "placeholder_qr.png"
)

// SimpleIcons are the toolbar drawables rendered as plain tiles.
var SimpleIcons = []string{"ic_add", "ic_back", "ic_reset", "ic_info"}

// PNGName appends the .png extension to a resource base name.
func PNGName(base string) string { return base + ".png" }

// BucketPath returns root/<bucket dir>/name.
func BucketPath(root string, bucket Bucket, name string) string {
	return filepath.Join(root, bucket.Dir, name)
}

// DrawablePath returns root/drawable/name.
func DrawablePath(root, name string) string {
	return filepath.Join(root, DrawableDir, name)
}
