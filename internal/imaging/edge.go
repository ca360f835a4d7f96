package imaging

import (
	"image"
)

// Pixel classification used while tracing edges.
const (
	notEdge uint8 = iota
	weakEdge
	strongEdge
)

// tan(22.5°) in fixed point with cannyShift fractional bits.
const (
	cannyShift = 15
	tg22       = 13573
)

// Canny computes a binary edge mask for a grayscale plane.
//
// The returned image has the same size as gray, anchored at (0,0), with edge
// pixels set to 255 and everything else 0.
//
// # Algorithm
//
//  1. Gradients: 3x3 Sobel operators on the raw 0-255 intensities, with
//     border pixels replicated. There is no smoothing pass.
//
//  2. Magnitude: L1 norm |Gx| + |Gy|, so values range 0-2040.
//
//  3. Non-maximum suppression: the gradient direction is quantized to
//     horizontal, vertical or one of the two diagonals, and a pixel survives
//     only if it is a local maximum along that direction.
//
//  4. Hysteresis:
//     - magnitude > high: strong edge (always kept)
//     - magnitude <= low: never an edge
//     - otherwise: weak edge, kept only if 8-connected, directly or through
//     other weak edges, to a strong edge
//
// If low is greater than high the two are swapped.
//
// # Threshold Selection
//
// Because the magnitude is an unsmoothed L1 norm, a full black/white step
// along one axis reaches 1020 and a diagonal step reaches 2040. The recolor
// defaults (500, 1250) therefore keep strong diagonal contours as seeds and
// follow them through weaker axis-aligned edges.
func Canny(gray *image.Gray, low, high float64) *image.Gray {
	if low > high {
		low, high = high, low
	}

	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst
	}

	dx, dy := sobel(gray)

	magnitude := make([]int, width*height)
	for i := range magnitude {
		magnitude[i] = abs(dx[i]) + abs(dy[i])
	}

	state := suppress(magnitude, dx, dy, width, height, low, high)
	for i, edge := range trace(state, width, height) {
		if edge {
			dst.Pix[(i/width)*dst.Stride+i%width] = 255
		}
	}
	return dst
}

// sobel returns the horizontal and vertical Sobel responses of gray,
// row-major with stride equal to the width.
func sobel(gray *image.Gray) (dx, dy []int) {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	at := func(x, y int) int {
		x = clamp(x, 0, width-1)
		y = clamp(y, 0, height-1)
		return int(gray.Pix[gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)])
	}

	dx = make([]int, width*height)
	dy = make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			tl, t, tr := at(x-1, y-1), at(x, y-1), at(x+1, y-1)
			l, r := at(x-1, y), at(x+1, y)
			bl, b, br := at(x-1, y+1), at(x, y+1), at(x+1, y+1)

			i := y*width + x
			dx[i] = (tr + 2*r + br) - (tl + 2*l + bl)
			dy[i] = (bl + 2*b + br) - (tl + 2*t + tr)
		}
	}
	return dx, dy
}

// suppress applies non-maximum suppression and the double threshold,
// classifying every pixel as notEdge, weakEdge or strongEdge.
//
// Magnitudes outside the image count as zero. Ties are broken toward the
// earlier pixel on horizontal and vertical runs so a two-pixel plateau
// yields a single edge.
func suppress(magnitude, dx, dy []int, width, height int, low, high float64) []uint8 {
	magAt := func(x, y int) int {
		if x < 0 || x >= width || y < 0 || y >= height {
			return 0
		}
		return magnitude[y*width+x]
	}

	state := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			m := magnitude[i]
			if float64(m) <= low {
				continue
			}

			gx, gy := dx[i], dy[i]
			ax := abs(gx)
			ay := abs(gy) << cannyShift
			tg22x := ax * tg22

			var isMax bool
			switch {
			case ay < tg22x:
				// Horizontal gradient: compare left and right
				isMax = m > magAt(x-1, y) && m >= magAt(x+1, y)
			case ay > tg22x+(ax<<(cannyShift+1)):
				// Vertical gradient: compare above and below
				isMax = m > magAt(x, y-1) && m >= magAt(x, y+1)
			default:
				s := 1
				if (gx < 0) != (gy < 0) {
					s = -1
				}
				isMax = m > magAt(x-s, y-1) && m > magAt(x+s, y+1)
			}
			if !isMax {
				continue
			}

			if float64(m) > high {
				state[i] = strongEdge
			} else {
				state[i] = weakEdge
			}
		}
	}
	return state
}

// trace performs edge tracking by hysteresis: every strong pixel is an edge,
// and a weak pixel becomes an edge when any of its 8 neighbors is one.
func trace(state []uint8, width, height int) []bool {
	edges := make([]bool, len(state))
	stack := make([]int, 0, 64)

	for i, s := range state {
		if s == strongEdge {
			edges[i] = true
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%width, i/width

		for ny := y - 1; ny <= y+1; ny++ {
			for nx := x - 1; nx <= x+1; nx++ {
				if nx < 0 || nx >= width || ny < 0 || ny >= height {
					continue
				}
				j := ny*width + nx
				if state[j] == weakEdge && !edges[j] {
					edges[j] = true
					stack = append(stack, j)
				}
			}
		}
	}
	return edges
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
