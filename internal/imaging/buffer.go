package imaging

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Buffer is an owned, rectangular grid of 8-bit non-premultiplied RGBA pixels.
//
// A Buffer is never modified after it is produced. Operators return a new
// Buffer instead of writing into their input, so a Buffer can be shared by
// reference wherever only reading is needed.
//
// The bounds of the underlying image always start at (0,0).
type Buffer struct {
	img *image.NRGBA
}

// NewBuffer copies img into a new Buffer, converting it to NRGBA and moving
// its origin to (0,0). The returned Buffer shares no memory with img.
func NewBuffer(img image.Image) *Buffer {
	return &Buffer{img: imaging.Clone(img)}
}

// wrap takes ownership of an NRGBA image produced by an operator. The caller
// must not keep or modify its own reference.
func wrap(img *image.NRGBA) *Buffer {
	if img.Rect.Min != (image.Point{}) {
		return NewBuffer(img)
	}
	return &Buffer{img: img}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.img.Rect.Dx() }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Bounds returns the buffer rectangle, always anchored at (0,0).
func (b *Buffer) Bounds() image.Rectangle { return b.img.Rect }

// Image returns a read-only view of the pixels. Callers must not draw into it.
func (b *Buffer) Image() image.Image { return b.img }

// At returns the pixel at (x, y). Coordinates outside the buffer yield the
// zero color.
func (b *Buffer) At(x, y int) color.NRGBA {
	return b.img.NRGBAAt(x, y)
}

// Clone returns a deep copy whose pixel storage is independent of b.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.img.Pix))
	copy(pix, b.img.Pix)
	return &Buffer{img: &image.NRGBA{Pix: pix, Stride: b.img.Stride, Rect: b.img.Rect}}
}

// Equal reports whether b and o have the same dimensions and identical pixel
// bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.img.Rect != o.img.Rect {
		return false
	}
	w := b.Width() * 4
	for y := 0; y < b.Height(); y++ {
		ri := y * b.img.Stride
		oi := y * o.img.Stride
		if !bytes.Equal(b.img.Pix[ri:ri+w], o.img.Pix[oi:oi+w]) {
			return false
		}
	}
	return true
}
