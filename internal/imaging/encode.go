package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// SavePNG writes img to path as a PNG file, replacing any existing file.
//
// The format is always PNG regardless of the path's extension. Fully opaque
// RGBA/NRGBA images are stored as 8-bit RGB. On failure no file is left
// behind.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := imaging.Encode(f, img, imaging.PNG); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64-encoded.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
