package res

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestBuckets(t *testing.T) {
	want := map[string]int{
		"mipmap-mdpi":    48,
		"mipmap-hdpi":    72,
		"mipmap-xhdpi":   96,
		"mipmap-xxhdpi":  144,
		"mipmap-xxxhdpi": 192,
	}
	if len(Buckets) != len(want) {
		t.Fatalf("len(Buckets) = %d, want %d", len(Buckets), len(want))
	}
	prev := 0
	for _, b := range Buckets {
		if want[b.Dir] != b.Size {
			t.Errorf("%s size = %d, want %d", b.Dir, b.Size, want[b.Dir])
		}
		if b.Size <= prev {
			t.Errorf("%s out of density order", b.Dir)
		}
		prev = b.Size
	}
}

func TestPaths(t *testing.T) {
	if got, want := BucketPath("/tmp/out", Buckets[0], PNGName("foo")), filepath.Join("/tmp/out", "mipmap-mdpi", "foo.png"); got != want {
		t.Errorf("BucketPath = %q, want %q", got, want)
	}
	if got, want := DrawablePath("res", PlaceholderFile), filepath.Join("res", "drawable", "placeholder_model.png"); got != want {
		t.Errorf("DrawablePath = %q, want %q", got, want)
	}
}

func TestWritePNGCreatesDirsAndOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mipmap-hdpi", "nested", "icon.png")

	for _, size := range []int{72, 36} {
		if err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, size, size))); err != nil {
			t.Fatalf("WritePNG(%d): %v", size, err)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("DecodeConfig: %v", err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("decoded %dx%d, want %dx%d", cfg.Width, cfg.Height, size, size)
		}
	}
}

func TestWritePNGReportsPath(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "drawable")
	if err := os.WriteFile(blocker, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(blocker, "ic_add.png")
	err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Fatal("expected error when parent is a file")
	}
}
