package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Dilate grows the nonzero regions of a mask with a size x size all-ones
// structuring element, one iteration.
//
// Each output pixel is the maximum of its size x size neighborhood in mask.
// Pixels beyond the border never contribute. size must be a positive odd
// number; size 1 returns an unchanged copy.
//
// The square element is applied as size/2 successive 3x3 dilations, which
// give the same result as one pass with the full element. Passes past the
// image's larger side change nothing and are skipped.
func Dilate(mask *image.Gray, size int) (*image.Gray, error) {
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("dilation kernel size must be a positive odd number, got %d", size)
	}
	if size == 1 {
		return ToGray(mask), nil
	}

	bounds := mask.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst, nil
	}

	passes := size / 2
	if limit := max(width, height); passes > limit {
		passes = limit
	}

	var dilated image.Image = mask
	for i := 0; i < passes; i++ {
		dilated = effect.Dilate(dilated, 1)
	}

	rgba := dilated.(*image.RGBA)
	db := rgba.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Gray input keeps R == G == B after dilation
			dst.Pix[y*dst.Stride+x] = rgba.Pix[rgba.PixOffset(db.Min.X+x, db.Min.Y+y)]
		}
	}
	return dst, nil
}

// CountNonZero returns the number of nonzero pixels in a mask.
func CountNonZero(mask *image.Gray) int {
	bounds := mask.Bounds()
	n := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if mask.GrayAt(x, y).Y != 0 {
				n++
			}
		}
	}
	return n
}
