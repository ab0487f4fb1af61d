package icon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
)

// Save encodes img as PNG and writes it to path, overwriting any existing
// file. Encoding completes fully in memory before the write starts, so a
// failed write never leaves a partially encoded file behind.
func Save(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write icon: %w", err)
	}
	return nil
}
