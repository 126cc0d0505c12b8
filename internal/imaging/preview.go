package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// PreviewResult is a PNG rendition of a buffer for display by a client.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview encodes buf as base64 PNG. When maxSize is positive and either
// dimension exceeds it, the image is first scaled down to fit inside a
// maxSize x maxSize box, preserving aspect ratio. buf itself is not changed.
func Preview(buf *Buffer, maxSize int) (*PreviewResult, error) {
	img := buf.Image()
	if maxSize > 0 && (buf.Width() > maxSize || buf.Height() > maxSize) {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	b := img.Bounds()
	return &PreviewResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}
