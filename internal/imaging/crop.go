package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts the Width x Height rectangle whose top-left corner is (X, Y).
//
// The rectangle must lie entirely inside the source buffer:
//   - 0 <= X <= width-1 and 0 <= Y <= height-1
//   - Width >= 1 and Height >= 1
//   - X+Width <= width and Y+Height <= height
//
// Any violation fails with ErrInvalidRegion. Clamping out-of-range values is
// the caller's job.
type Crop struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (Crop) Name() string { return "crop" }

// Rect returns the crop rectangle in buffer coordinates.
func (c Crop) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// Validate checks the rectangle against src without cropping.
func (c Crop) Validate(src *Buffer) error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: crop size %dx%d must be at least 1x1", ErrInvalidRegion, c.Width, c.Height)
	}
	if c.X < 0 || c.Y < 0 || c.X >= src.Width() || c.Y >= src.Height() {
		return fmt.Errorf("%w: crop origin (%d,%d) outside image bounds %dx%d",
			ErrInvalidRegion, c.X, c.Y, src.Width(), src.Height())
	}
	// Subtract rather than add so huge sizes cannot overflow.
	if c.Width > src.Width()-c.X || c.Height > src.Height()-c.Y {
		return fmt.Errorf("%w: crop %dx%d at (%d,%d) exceeds image bounds %dx%d",
			ErrInvalidRegion, c.Width, c.Height, c.X, c.Y, src.Width(), src.Height())
	}
	return nil
}

func (c Crop) Apply(src *Buffer) (*Buffer, error) {
	if err := c.Validate(src); err != nil {
		return nil, err
	}
	return wrap(imaging.Crop(src.Image(), c.Rect())), nil
}
