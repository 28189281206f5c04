package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"

	"github.com/anthonynsimon/bild/imgio"
)

// ExportResult contains a buffer encoded as PNG.
type ExportResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`

	// Path is where the PNG was written, empty if it was not saved.
	Path string `json:"path,omitempty"`
}

// Export encodes img as a base64 PNG. When path is non-empty the same PNG
// bytes are also written to that file.
func Export(img image.Image, path string) (*ExportResult, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	if path != "" {
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
	}

	bounds := img.Bounds()
	return &ExportResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Path:        path,
	}, nil
}
