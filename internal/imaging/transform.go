package imaging

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// ResampleFilter selects the kernel used by Resize.
type ResampleFilter int

const (
	// Triangle is linear interpolation. It is the zero value and the default.
	Triangle ResampleFilter = iota
	// Nearest picks the closest source pixel.
	Nearest
	// CatmullRom is a sharp cubic filter.
	CatmullRom
	// Gaussian is a smooth bell-shaped filter.
	Gaussian
	// Lanczos3 is a windowed sinc with support 3.
	Lanczos3
)

var filterNames = map[ResampleFilter]string{
	Triangle:   "triangle",
	Nearest:    "nearest",
	CatmullRom: "catmullrom",
	Gaussian:   "gaussian",
	Lanczos3:   "lanczos3",
}

// String returns the canonical lower-case filter name.
func (f ResampleFilter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ResampleFilter(%d)", int(f))
}

// ParseResampleFilter maps a filter name to a ResampleFilter. Matching is
// case-insensitive and accepts the short labels "near", "tri", "cmr",
// "gauss" and "lcz2" as aliases. An empty name yields Triangle.
func ParseResampleFilter(name string) (ResampleFilter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "triangle", "tri", "linear":
		return Triangle, nil
	case "nearest", "near":
		return Nearest, nil
	case "catmullrom", "catmull-rom", "cmr":
		return CatmullRom, nil
	case "gaussian", "gauss":
		return Gaussian, nil
	case "lanczos3", "lanczos", "lcz2":
		return Lanczos3, nil
	}
	return Triangle, fmt.Errorf("%w: unknown resample filter %q", ErrInvalidParameter, name)
}

func (f ResampleFilter) kernel() (imaging.ResampleFilter, error) {
	switch f {
	case Triangle:
		return imaging.Linear, nil
	case Nearest:
		return imaging.NearestNeighbor, nil
	case CatmullRom:
		return imaging.CatmullRom, nil
	case Gaussian:
		return imaging.Gaussian, nil
	case Lanczos3:
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("%w: unknown resample filter %d", ErrInvalidParameter, int(f))
}

// DefaultMaxPixels bounds the area of a Resize target when Resize.MaxPixels
// is zero: 64 Mi pixels, 256 MiB of NRGBA.
const DefaultMaxPixels = 1 << 26

// Resize scales the buffer to exactly Width x Height, ignoring aspect ratio.
// Targets larger than MaxPixels pixels (DefaultMaxPixels when zero) fail with
// ErrInvalidParameter.
type Resize struct {
	Width     int
	Height    int
	Filter    ResampleFilter
	MaxPixels int
}

func (Resize) Name() string { return "resize" }

// IsIdentity reports whether the target size equals the size of src.
func (r Resize) IsIdentity(src *Buffer) bool {
	return r.Width == src.Width() && r.Height == src.Height()
}

func (r Resize) Apply(src *Buffer) (*Buffer, error) {
	if r.Width < 1 || r.Height < 1 {
		return nil, fmt.Errorf("%w: resize target %dx%d must be at least 1x1", ErrInvalidParameter, r.Width, r.Height)
	}
	limit := r.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	// Divide rather than multiply so huge sides cannot overflow.
	if r.Width > limit/r.Height {
		return nil, fmt.Errorf("%w: resize target %dx%d exceeds %d pixels", ErrInvalidParameter, r.Width, r.Height, limit)
	}
	kernel, err := r.Filter.kernel()
	if err != nil {
		return nil, err
	}
	if r.IsIdentity(src) {
		return src.Clone(), nil
	}
	return wrap(imaging.Resize(src.Image(), r.Width, r.Height, kernel)), nil
}

// Rotate90 rotates the buffer a quarter turn clockwise. Width and height swap.
type Rotate90 struct{}

func (Rotate90) Name() string { return "rotate90" }

// imaging rotates counter-clockwise, so a clockwise quarter turn is its 270.
func (Rotate90) Apply(src *Buffer) (*Buffer, error) {
	return wrap(imaging.Rotate270(src.Image())), nil
}

// Rotate180 rotates the buffer a half turn.
type Rotate180 struct{}

func (Rotate180) Name() string { return "rotate180" }

func (Rotate180) Apply(src *Buffer) (*Buffer, error) {
	return wrap(imaging.Rotate180(src.Image())), nil
}

// Rotate270 rotates the buffer three quarter turns clockwise. Width and
// height swap.
type Rotate270 struct{}

func (Rotate270) Name() string { return "rotate270" }

func (Rotate270) Apply(src *Buffer) (*Buffer, error) {
	return wrap(imaging.Rotate90(src.Image())), nil
}

// RotateBy returns the rotation operator for a clockwise angle of 90, 180 or
// 270 degrees. Negative angles and multiples of 360 are normalised first.
func RotateBy(degrees int) (Operator, error) {
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		return Rotate90{}, nil
	case 180:
		return Rotate180{}, nil
	case 270:
		return Rotate270{}, nil
	}
	return nil, fmt.Errorf("%w: rotation must be a non-zero multiple of 90 degrees, got %d", ErrInvalidParameter, degrees)
}

// FlipVertical mirrors the buffer top to bottom.
type FlipVertical struct{}

func (FlipVertical) Name() string { return "flip_vertical" }

func (FlipVertical) Apply(src *Buffer) (*Buffer, error) {
	return wrap(imaging.FlipV(src.Image())), nil
}

// FlipHorizontal mirrors the buffer left to right.
type FlipHorizontal struct{}

func (FlipHorizontal) Name() string { return "flip_horizontal" }

func (FlipHorizontal) Apply(src *Buffer) (*Buffer, error) {
	return wrap(imaging.FlipH(src.Image())), nil
}

// FlipAlong returns the flip operator for "vertical" or "horizontal".
func FlipAlong(axis string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(axis)) {
	case "vertical", "v":
		return FlipVertical{}, nil
	case "horizontal", "h":
		return FlipHorizontal{}, nil
	}
	return nil, fmt.Errorf("%w: unknown flip axis %q", ErrInvalidParameter, axis)
}
