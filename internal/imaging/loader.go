package imaging

import (
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// FileCodec decodes image files into Buffers and writes Buffers back to disk.
//
// Decoding accepts every format registered with the image package (PNG, JPEG,
// GIF, BMP, TIFF and WebP). JPEG EXIF orientation is applied on load, so the
// returned Buffer is always upright.
//
// Encoding always produces PNG regardless of the destination extension.
//
// FileCodec has no state and is safe for concurrent use.
type FileCodec struct{}

// Decode reads the image at path.
//
// # Errors
//
//   - Returns an error wrapping ErrDecode if the file does not exist, cannot
//     be read, or is not a supported image.
func (FileCodec) Decode(path string) (*Buffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return NewBuffer(img), nil
}

// Encode writes buf to path as PNG, replacing any existing file.
//
// # Errors
//
//   - Returns an error wrapping ErrEncode if buf is nil, the destination
//     cannot be created, or encoding fails.
func (FileCodec) Encode(buf *Buffer, path string) error {
	if buf == nil {
		return fmt.Errorf("%w: %s: nil buffer", ErrEncode, path)
	}
	if err := imgio.Save(path, buf.Image(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	return nil
}

// Info describes a file on disk together with the buffer decoded from it.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", "bmp", "tiff", "webp" or "unknown",
	// detected from the file extension.
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// FileInfo reports the dimensions of buf and the on-disk size and format of
// the file at path.
func FileInfo(buf *Buffer, path string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	return &Info{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        DetectFormat(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

// DetectFormat maps a file extension to a format name.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
