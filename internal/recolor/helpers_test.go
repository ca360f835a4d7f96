package recolor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/recolor-image/internal/colormap"
)

// newGray creates a grayscale plane filled by fn.
func newGray(width, height int, fn func(x, y int) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: fn(x, y)})
		}
	}
	return img
}

// sceneGray builds a 48x48 test scene: a horizontal ramp covering every
// mid-tone, a pure black band, a pure white band, and a diagonal step from
// 20 to 240 that is strong enough to seed edges at the default thresholds.
func sceneGray() *image.Gray {
	return newGray(48, 48, func(x, y int) uint8 {
		switch {
		case y < 4:
			return 0
		case y >= 44:
			return 255
		case y < 20:
			return uint8(1 + x*5)
		case x+y >= 60:
			return 240
		default:
			return 20
		}
	})
}

// writeGrayPNG writes img as a PNG into dir and returns its path.
func writeGrayPNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

// newTestRecolorer returns a Recolorer over the builtin colormaps with
// default options.
func newTestRecolorer(t *testing.T) *Recolorer {
	t.Helper()
	r, err := New(colormap.Builtin(), DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

// readPNG decodes the PNG at path.
func readPNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode %s: %v", path, err)
	}
	return img
}

// rgbAt returns the 8-bit RGB components of img at (x, y).
func rgbAt(img image.Image, x, y int) [3]uint8 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}
