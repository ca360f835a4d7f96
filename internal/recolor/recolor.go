package recolor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/recolor-image/internal/colormap"
	"github.com/ironsheep/recolor-image/internal/imaging"
)

// Recolorer recolors images with colormaps from a fixed registry.
//
// A Recolorer is safe for concurrent use. Decoded inputs are cached by path
// and decoded again when the file changes on disk.
type Recolorer struct {
	registry *colormap.Registry
	cache    *imaging.ImageCache
	opts     Options
}

// New creates a Recolorer. Returns an error if registry is nil or opts is
// invalid.
func New(registry *colormap.Registry, opts Options) (*Recolorer, error) {
	if registry == nil {
		return nil, fmt.Errorf("colormap registry is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return &Recolorer{
		registry: registry,
		cache:    imaging.NewImageCache(),
		opts:     opts,
	}, nil
}

// Registry returns the colormaps this Recolorer resolves names against.
func (r *Recolorer) Registry() *colormap.Registry {
	return r.registry
}

// Options returns the tuning in effect.
func (r *Recolorer) Options() Options {
	return r.opts
}

// Recolor loads the image at imagePath and recolors it with the named
// colormap.
//
// The result is a fully opaque RGB image with the same dimensions as the
// input, anchored at (0,0).
//
// # Errors
//
//   - *imaging.ImageLoadError if the file is missing or unreadable
//   - *colormap.InvalidColormapError if colormapName is not registered
func (r *Recolorer) Recolor(imagePath, colormapName string) (*image.NRGBA, error) {
	gray, err := r.cache.Load(imagePath)
	if err != nil {
		return nil, err
	}

	cm, err := r.registry.Lookup(colormapName)
	if err != nil {
		return nil, err
	}

	return r.RecolorImage(gray, cm)
}

// RecolorImage recolors an in-memory grayscale plane with cm.
//
// Every output pixel is chosen in this order, later rules winning:
//
//  1. the colormap color for the pixel's intensity
//  2. the original gray on all channels, if the pixel is in the dilated
//     edge mask
//  3. black if the original is 0, white if the original is 255
func (r *Recolorer) RecolorImage(gray *image.Gray, cm *colormap.Colormap) (*image.NRGBA, error) {
	mask, err := r.EdgeMask(gray)
	if err != nil {
		return nil, err
	}
	return paint(gray, mask, cm), nil
}

// paint applies cm to gray, restoring the original gray under mask and
// pinning pure black and pure white.
func paint(gray, mask *image.Gray, cm *colormap.Colormap) *image.NRGBA {
	palette := cm.Palette()
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		row := gray.Pix[gray.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < width; x++ {
			v := row[x]

			c := palette[v]
			if mask.Pix[y*mask.Stride+x] != 0 {
				c = color.NRGBA{R: v, G: v, B: v, A: 255}
			}
			switch v {
			case 0:
				c = color.NRGBA{A: 255}
			case 255:
				c = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			}

			i := y*dst.Stride + x*4
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
		}
	}
	return dst
}

// EdgeMask returns the dilated Canny edge mask for gray, anchored at (0,0).
// Mask pixels are 255 near edges and 0 elsewhere.
func (r *Recolorer) EdgeMask(gray *image.Gray) (*image.Gray, error) {
	edges := imaging.Canny(gray, r.opts.LowThreshold, r.opts.HighThreshold)
	mask, err := imaging.Dilate(edges, r.opts.DilationSize)
	if err != nil {
		return nil, fmt.Errorf("failed to dilate edge mask: %w", err)
	}
	return mask, nil
}

// LoadGray loads imagePath through the Recolorer's cache.
func (r *Recolorer) LoadGray(imagePath string) (*image.Gray, error) {
	return r.cache.Load(imagePath)
}
