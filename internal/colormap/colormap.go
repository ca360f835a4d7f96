package colormap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// lutSize is the number of entries in every colormap lookup table.
const lutSize = 256

// Stop is one anchor of a piecewise-linear channel ramp.
//
// X is the position along the gradient (0-1) and Y is the channel value at
// that position (0-1).
type Stop struct {
	X float64
	Y float64
}

// Colormap is a named gradient backed by a lookup table.
type Colormap struct {
	name string
	lut  [lutSize]colorful.Color
}

// Segmented builds a colormap from independent red, green and blue ramps.
//
// Each ramp must have at least two stops, start at X=0, end at X=1 and have
// non-decreasing X values. Channel values are interpolated linearly between
// neighboring stops.
func Segmented(name string, red, green, blue []Stop) (*Colormap, error) {
	if name == "" {
		return nil, fmt.Errorf("colormap name must not be empty")
	}
	for i, ramp := range [][]Stop{red, green, blue} {
		if err := validateStops(ramp); err != nil {
			return nil, fmt.Errorf("colormap %s: channel %d: %w", name, i, err)
		}
	}

	cm := &Colormap{name: name}
	for i := 0; i < lutSize; i++ {
		x := float64(i) / float64(lutSize-1)
		cm.lut[i] = colorful.Color{
			R: interpolate(red, x),
			G: interpolate(green, x),
			B: interpolate(blue, x),
		}
	}
	return cm, nil
}

// FromList builds a colormap from evenly spaced colors given as "#RRGGBB"
// hex strings. Neighboring colors are blended linearly in RGB.
func FromList(name string, hexColors ...string) (*Colormap, error) {
	if name == "" {
		return nil, fmt.Errorf("colormap name must not be empty")
	}
	if len(hexColors) < 2 {
		return nil, fmt.Errorf("colormap %s: need at least 2 colors, got %d", name, len(hexColors))
	}

	colors := make([]colorful.Color, len(hexColors))
	for i, h := range hexColors {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colormap %s: color %d: %w", name, i, err)
		}
		colors[i] = c
	}

	cm := &Colormap{name: name}
	segments := float64(len(colors) - 1)
	for i := 0; i < lutSize; i++ {
		pos := float64(i) / float64(lutSize-1) * segments
		j := int(pos)
		if j >= len(colors)-1 {
			j = len(colors) - 2
		}
		cm.lut[i] = colors[j].BlendRgb(colors[j+1], pos-float64(j)).Clamped()
	}
	return cm, nil
}

// Name returns the name the colormap is registered under.
func (c *Colormap) Name() string {
	return c.name
}

// At returns the color for a normalized intensity t.
//
// t is expected in [0,1]; values outside clamp to the ends of the gradient
// and NaN maps to the low end.
func (c *Colormap) At(t float64) colorful.Color {
	return c.lut[lutIndex(t)]
}

// Reversed returns a new colormap running in the opposite direction.
//
// The reversed map is named "<name>_r"; reversing a reversed map restores the
// original name.
func (c *Colormap) Reversed() *Colormap {
	name := c.name + "_r"
	if base, ok := strings.CutSuffix(c.name, "_r"); ok {
		name = base
	}

	rev := &Colormap{name: name}
	for i := range c.lut {
		rev.lut[i] = c.lut[lutSize-1-i]
	}
	return rev
}

// Palette returns the opaque 8-bit color for every intensity 0-255.
//
// Intensity v is normalized to v/255, mapped through the gradient, and each
// channel is rescaled to 0-255 by truncation.
func (c *Colormap) Palette() [256]color.NRGBA {
	var p [256]color.NRGBA
	for v := range p {
		col := c.At(float64(v) / 255)
		p[v] = color.NRGBA{
			R: toByte(col.R),
			G: toByte(col.G),
			B: toByte(col.B),
			A: 255,
		}
	}
	return p
}

// lutIndex converts t to a table index: int(t*N), with t == 1 folded into
// the last entry and everything clipped to the table.
func lutIndex(t float64) int {
	if math.IsNaN(t) {
		return 0
	}
	xa := t * lutSize
	if xa >= lutSize {
		return lutSize - 1
	}
	if xa < 0 {
		return 0
	}
	return int(xa)
}

// toByte rescales a 0-1 channel value to 8 bits, truncating in float32 the
// way an image buffer conversion does.
func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(float32(v) * 255)
}

func validateStops(stops []Stop) error {
	if len(stops) < 2 {
		return fmt.Errorf("need at least 2 stops, got %d", len(stops))
	}
	if stops[0].X != 0 || stops[len(stops)-1].X != 1 {
		return fmt.Errorf("stops must start at x=0 and end at x=1")
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].X < stops[i-1].X {
			return fmt.Errorf("stop %d: x=%g is before previous x=%g", i, stops[i].X, stops[i-1].X)
		}
	}
	return nil
}

// interpolate evaluates a ramp at x. Stops sharing an X value form a step.
func interpolate(stops []Stop, x float64) float64 {
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if x > hi.X {
			continue
		}
		if hi.X == lo.X {
			return hi.Y
		}
		return lo.Y + (hi.Y-lo.Y)*(x-lo.X)/(hi.X-lo.X)
	}
	return stops[len(stops)-1].Y
}
