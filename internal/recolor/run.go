package recolor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/recolor-image/internal/colormap"
	"github.com/ironsheep/recolor-image/internal/imaging"
)

// Request describes one invocation: a single colormap, or test mode over
// colormap.TestColormaps.
type Request struct {
	// ImagePath is the input image. Required.
	ImagePath string

	// ColormapName selects the colormap. Required unless Test is set, and
	// must be empty when it is.
	ColormapName string

	// OutputDir receives the output files. Empty means the current
	// directory. Created if missing.
	OutputDir string

	// Test renders one output per name in colormap.TestColormaps.
	Test bool
}

// Errors returned by Request.Validate.
var (
	ErrImagePathRequired = errors.New("image path is required")
	ErrColormapRequired  = errors.New("a colormap name is required unless test mode is set")
	ErrColormapWithTest  = errors.New("a colormap name cannot be combined with test mode")
)

// Validate checks the request for user errors before any work is done.
func (req Request) Validate() error {
	if req.ImagePath == "" {
		return ErrImagePathRequired
	}
	if req.Test && req.ColormapName != "" {
		return ErrColormapWithTest
	}
	if !req.Test && req.ColormapName == "" {
		return ErrColormapRequired
	}
	return nil
}

// Colormaps returns the colormap names the request renders, in order.
func (req Request) Colormaps() []string {
	if req.Test {
		names := make([]string, len(colormap.TestColormaps))
		copy(names, colormap.TestColormaps)
		return names
	}
	return []string{req.ColormapName}
}

// OutputPath returns where the recolored image for colormapName is written:
//
//	<outputDir>/<input name without extension>_recolored_<colormapName>.png
//
// Only the last extension of the input name is removed.
func OutputPath(outputDir, imagePath, colormapName string) string {
	if outputDir == "" {
		outputDir = "."
	}
	base := filepath.Base(imagePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, fmt.Sprintf("%s_recolored_%s.png", base, colormapName))
}

// Run executes req and returns the paths written, in order.
//
// The input is decoded and its edge mask computed once per run. Colormaps are
// processed sequentially. The first failure stops the run; files
// already written for earlier colormaps are kept and returned alongside the
// error, and no file is written for the failing colormap.
func (r *Recolorer) Run(req Request) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	gray, err := r.LoadGray(req.ImagePath)
	if err != nil {
		return nil, err
	}
	mask, err := r.EdgeMask(gray)
	if err != nil {
		return nil, err
	}

	var written []string
	for _, name := range req.Colormaps() {
		cm, err := r.registry.Lookup(name)
		if err != nil {
			return written, err
		}
		img := paint(gray, mask, cm)

		out := OutputPath(outputDir, req.ImagePath, name)
		if err := imaging.SavePNG(img, out); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", out, err)
		}
		written = append(written, out)
	}
	return written, nil
}
