package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
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

// uniformGray creates a grayscale plane of a single value.
func uniformGray(width, height int, v uint8) *image.Gray {
	return newGray(width, height, func(x, y int) uint8 { return v })
}

// verticalStep creates a plane that is 0 left of column split and 255 from
// split onward.
func verticalStep(width, height, split int) *image.Gray {
	return newGray(width, height, func(x, y int) uint8 {
		if x >= split {
			return 255
		}
		return 0
	})
}

// writePNG encodes img into a PNG file inside a per-test temp directory and
// returns its path.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	writePNGAt(t, path, img)
	return path
}

// writePNGAt encodes img into a PNG file at path, replacing any existing
// file.
func writePNGAt(t *testing.T, path string, img image.Image) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
}

// edgePixels lists the coordinates of nonzero mask pixels.
func edgePixels(mask *image.Gray) []image.Point {
	var pts []image.Point
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if mask.GrayAt(x, y).Y != 0 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}
