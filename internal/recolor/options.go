package recolor

import (
	"fmt"
	"math"
)

// Default tuning values, found by trial and error.
const (
	DefaultLowThreshold  = 500
	DefaultHighThreshold = 1250
	DefaultDilationSize  = 3
)

// MaxDilationSize is the largest structuring element Validate accepts.
const MaxDilationSize = 255

// Options tunes edge detection and edge preservation.
type Options struct {
	// LowThreshold is the gradient magnitude at or below which a pixel is
	// never an edge.
	LowThreshold float64

	// HighThreshold is the gradient magnitude above which a pixel is always
	// an edge. Pixels in between are edges only when connected to one.
	HighThreshold float64

	// DilationSize is the side of the square structuring element used to
	// grow the edge mask. Must be a positive odd number no larger than
	// MaxDilationSize.
	DilationSize int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		DilationSize:  DefaultDilationSize,
	}
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if math.IsNaN(o.LowThreshold) || math.IsNaN(o.HighThreshold) {
		return fmt.Errorf("thresholds must be numbers (low=%g, high=%g)", o.LowThreshold, o.HighThreshold)
	}
	if o.LowThreshold < 0 || o.HighThreshold < 0 {
		return fmt.Errorf("thresholds must not be negative (low=%g, high=%g)", o.LowThreshold, o.HighThreshold)
	}
	if o.DilationSize < 1 || o.DilationSize%2 == 0 {
		return fmt.Errorf("dilation size must be a positive odd number, got %d", o.DilationSize)
	}
	if o.DilationSize > MaxDilationSize {
		return fmt.Errorf("dilation size must be at most %d, got %d", MaxDilationSize, o.DilationSize)
	}
	return nil
}
