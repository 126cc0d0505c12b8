package imaging

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBAColor is an 8-bit non-premultiplied color.
type RGBAColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"` // 0 = fully transparent, 255 = opaque
}

// HSLColor is a color in HSL space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult holds one color in several representations.
type ColorResult struct {
	Hex  string    `json:"hex"` // "#RRGGBB", alpha excluded
	RGBA RGBAColor `json:"rgba"`
	HSL  HSLColor  `json:"hsl"`
}

// SampleColor returns the color of the pixel at (x, y).
//
// Coordinates are 0-based with the origin at the top-left corner. An error is
// returned if (x, y) lies outside the buffer.
func SampleColor(buf *Buffer, x, y int) (*ColorResult, error) {
	if x < 0 || x >= buf.Width() || y < 0 || y >= buf.Height() {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds %dx%d", x, y, buf.Width(), buf.Height())
	}
	c := buf.At(x, y)
	return describe(c.R, c.G, c.B, c.A), nil
}

// MeanColor returns the average of every pixel in the buffer, channel by
// channel in sRGB space.
func MeanColor(buf *Buffer) *ColorResult {
	var sum [4]uint64
	pix := buf.img.Pix
	for y := 0; y < buf.Height(); y++ {
		row := y * buf.img.Stride
		for x := 0; x < buf.Width(); x++ {
			i := row + x*4
			sum[0] += uint64(pix[i])
			sum[1] += uint64(pix[i+1])
			sum[2] += uint64(pix[i+2])
			sum[3] += uint64(pix[i+3])
		}
	}
	n := uint64(buf.Width() * buf.Height())
	if n == 0 {
		return describe(0, 0, 0, 0)
	}
	avg := func(s uint64) uint8 { return uint8((s + n/2) / n) }
	return describe(avg(sum[0]), avg(sum[1]), avg(sum[2]), avg(sum[3]))
}

func describe(r, g, b, a uint8) *ColorResult {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return &ColorResult{
		Hex:  strings.ToUpper(c.Hex()),
		RGBA: RGBAColor{R: r, G: g, B: b, A: a},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}
