package imaging

import (
	"image/color"
	"testing"
)

func TestSampleColor(t *testing.T) {
	buf := patternBuffer(10, 10)

	tests := []struct {
		name string
		x, y int
		hex  string
		rgba RGBAColor
		hsl  HSLColor
	}{
		{"red", 0, 0, "#FF0000", RGBAColor{255, 0, 0, 255}, HSLColor{0, 100, 50}},
		{"green", 9, 0, "#00FF00", RGBAColor{0, 255, 0, 255}, HSLColor{120, 100, 50}},
		{"blue", 0, 9, "#0000FF", RGBAColor{0, 0, 255, 255}, HSLColor{240, 100, 50}},
		{"white", 9, 9, "#FFFFFF", RGBAColor{255, 255, 255, 255}, HSLColor{0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleColor(buf, tt.x, tt.y)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if got.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.hex)
			}
			if got.RGBA != tt.rgba {
				t.Errorf("RGBA: got %+v, want %+v", got.RGBA, tt.rgba)
			}
			if got.HSL != tt.hsl {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.hsl)
			}
		})
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	buf := solidBuffer(5, 5, red)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if _, err := SampleColor(buf, p[0], p[1]); err == nil {
			t.Errorf("SampleColor(%d,%d): expected error", p[0], p[1])
		}
	}
}

func TestSampleColor_Black(t *testing.T) {
	buf := solidBuffer(2, 2, color.NRGBA{0, 0, 0, 255})

	got, err := SampleColor(buf, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if got.Hex != "#000000" || got.HSL != (HSLColor{0, 0, 0}) {
		t.Errorf("black: got %s %+v", got.Hex, got.HSL)
	}
}

func TestMeanColor(t *testing.T) {
	got := MeanColor(patternBuffer(4, 4))

	want := RGBAColor{128, 128, 128, 255}
	if got.RGBA != want {
		t.Errorf("RGBA: got %+v, want %+v", got.RGBA, want)
	}
	if got.Hex != "#808080" {
		t.Errorf("Hex: got %s, want #808080", got.Hex)
	}
}

func TestMeanColor_Solid(t *testing.T) {
	got := MeanColor(solidBuffer(7, 3, blue))

	if got.RGBA != (RGBAColor{0, 0, 255, 255}) {
		t.Errorf("RGBA: got %+v, want opaque blue", got.RGBA)
	}
}
