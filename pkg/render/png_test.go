package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/flowmind/flowviz/pkg/diagram"
)

// Tests rasterize at a small scale; the default 300 px/unit output is
// 4800x3600 and far too slow for a unit test.
const testScale = 20.0

func TestRenderPNGDimensions(t *testing.T) {
	s := composeDefault(t)

	data, err := RenderPNG(s, WithPNGScale(testScale))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 320 || bounds.Dy() != 240 {
		t.Errorf("image size = %dx%d, want 320x240", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPNGBackgroundAndFill(t *testing.T) {
	s := diagram.NewSurface(16, 12)
	if err := s.PlaceNode(4, 4, 8, 4, "", "frontend"); err != nil {
		t.Fatalf("PlaceNode() error: %v", err)
	}

	data, err := RenderPNG(s, WithPNGScale(testScale))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}

	// Top-left corner is background.
	if got := color.RGBAModel.Convert(img.At(2, 2)); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("background pixel = %v, want white", got)
	}
	// Node interior: logical (8, 6) is the node center, device (160, 120).
	want := color.RGBA{0xE8, 0xF4, 0xFD, 255}
	if got := color.RGBAModel.Convert(img.At(160, 120)); got != want {
		t.Errorf("node interior pixel = %v, want %v", got, want)
	}
}

func TestRenderPNGDefaultScaleIs300DPI(t *testing.T) {
	if DefaultPNGScale != 300 {
		t.Errorf("DefaultPNGScale = %v, want 300", DefaultPNGScale)
	}
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b float64
	}{
		{"#FFFFFF", 1, 1, 1},
		{"#000000", 0, 0, 0},
		{"#666666", 0x66 / 255.0, 0x66 / 255.0, 0x66 / 255.0},
		{"not-a-color", 0, 0, 0},
		{"", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b := hexRGB(tt.in)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("hexRGB(%q) = (%v, %v, %v), want (%v, %v, %v)",
					tt.in, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}
