// Package imaging provides the image plumbing for recoloring: loading images
// as 8-bit grayscale planes, Canny edge masks, morphological dilation, and
// PNG output.
//
// All grayscale planes produced by this package have their bounds anchored at
// (0,0). Inputs are never modified; every operation allocates a new buffer.
//
// # Supported Formats
//
// Loading goes through github.com/disintegration/imaging and therefore reads
// PNG, JPEG, GIF, BMP and TIFF. EXIF orientation is applied on load. Color
// inputs are reduced to luminance with ITU-R BT.601 weights
// (0.299*R + 0.587*G + 0.114*B); alpha is ignored.
//
// # Edge Masks
//
// Masks are *image.Gray values where 255 marks an edge pixel and 0 marks a
// non-edge pixel. Canny produces one-pixel-wide edges; Dilate grows them.
//
// # Error Handling
//
// A file that cannot be opened or decoded yields *ImageLoadError, which wraps
// the underlying cause for errors.Is / errors.As.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other functions are stateless.
package imaging
