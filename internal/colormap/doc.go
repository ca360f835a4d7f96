// Package colormap maps normalized intensities to colors through named
// gradients.
//
// A Colormap is a continuous function from t in [0,1] to an RGB color,
// backed by a 256-entry lookup table sampled and indexed the same way the
// common scientific plotting colormaps are:
//
//	index = int(t * 256), with t == 1 mapping to 255
//
// Values outside [0,1] clamp to the first or last table entry. Colormaps are
// fully opaque; alpha is always 1 and is not carried.
//
// # Registry
//
// Colormaps are resolved by name through a Registry. A Registry is built once
// at startup (see Builtin) and never changes afterwards, so it is safe for
// concurrent use without locking. Any registered name may be suffixed with
// "_r" to obtain the reversed gradient.
//
// # Constructing Gradients
//
// Two constructors cover the built-in set:
//   - Segmented: per-channel piecewise-linear anchors (gray, hot, jet, ...)
//   - FromList: evenly spaced colors blended in RGB (viridis, magma, ...)
package colormap
