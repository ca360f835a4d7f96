// Package recolor maps grayscale images through a named colormap while
// keeping edges in their original gray tone.
//
// The pipeline for one image is:
//
//  1. Load the image as 8-bit grayscale.
//  2. Resolve the colormap by name.
//  3. Map every intensity through the colormap (v/255 -> RGB).
//  4. Detect edges with Canny hysteresis thresholding.
//  5. Dilate the edge mask.
//  6. Inside the mask, restore the original gray value on all channels.
//  7. Force original 0 to black and original 255 to white.
//
// Recoloring is a pure function of the input pixels, the colormap and the
// Options: the same inputs always give the same output.
package recolor
