package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 128, 64, 255})

	result, err := SampleColor(img, 50, 50)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.RGBA.A != 255 {
		t.Errorf("RGBA.A: got %d, want 255", result.RGBA.A)
	}
}

func TestSampleColor_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.RGBA
		wantHex string
		wantHue int
	}{
		{"pure red", color.RGBA{255, 0, 0, 255}, "#FF0000", 0},
		{"pure green", color.RGBA{0, 255, 0, 255}, "#00FF00", 120},
		{"pure blue", color.RGBA{0, 0, 255, 255}, "#0000FF", 240},
		{"yellow", color.RGBA{255, 255, 0, 255}, "#FFFF00", 60},
		{"white", color.RGBA{255, 255, 255, 255}, "#FFFFFF", 0},
		{"black", color.RGBA{0, 0, 0, 255}, "#000000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(10, 10, tt.color)
			result, err := SampleColor(img, 5, 5)
			if err != nil {
				t.Fatalf("SampleColor failed: %v", err)
			}
			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if result.HSL.H != tt.wantHue {
				t.Errorf("Hue: got %d, want %d", result.HSL.H, tt.wantHue)
			}
		})
	}
}

func TestSampleColor_NonPremultiplied(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(1, 1, color.NRGBA{200, 100, 50, 128})

	result, err := SampleColor(img, 1, 1)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	want := RGBAColor{R: 200, G: 100, B: 50, A: 128}
	if result.RGBA != want {
		t.Errorf("RGBA: got %+v, want %+v", result.RGBA, want)
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x too large", 100, 50},
		{"y too large", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleColor(img, tt.x, tt.y); err == nil {
				t.Error("SampleColor should fail for out-of-bounds coordinates")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#0000FF80", color.NRGBA{0, 0, 255, 128}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12345", "#GGGGGG", "#FF0000ZZ"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseHexColor(in); err == nil {
				t.Errorf("ParseHexColor(%q) should fail", in)
			}
		})
	}
}
