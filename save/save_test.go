package save

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"FractalVisualizer/fractal"
	"FractalVisualizer/palette"
)

func TestPNGRoundTrip(t *testing.T) {
	// 2x2 buffer with one distinct color per pixel
	pixels := []byte{
		255, 0, 0 /**/, 0, 255, 0,
		0, 0, 255 /**/, 10, 20, 30,
	}
	path := filepath.Join(t.TempDir(), "pixels.png")
	if err := PNG(path, 2, 2, pixels); err != nil {
		t.Fatalf("PNG failed: %s", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written file failed: %s", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding written file failed: %s", err)
	}

	if bounds := img.Bounds(); bounds.Dx() != 2 || bounds.Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", bounds)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			offset := (y*2 + x) * 3
			r, g, b, _ := img.At(x, y).RGBA()
			if uint8(r>>8) != pixels[offset] || uint8(g>>8) != pixels[offset+1] || uint8(b>>8) != pixels[offset+2] {
				t.Errorf("pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
					x, y, r>>8, g>>8, b>>8, pixels[offset], pixels[offset+1], pixels[offset+2])
			}
		}
	}
}

func TestPNGRejectsWrongBufferLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := PNG(path, 2, 2, make([]byte, 11)); err == nil {
		t.Error("PNG with short buffer should fail")
	}
}

func TestFractalWritesCanonicalName(t *testing.T) {
	dir := t.TempDir()
	path, err := Fractal(dir, 8, 6, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Fire, nil, false)
	if err != nil {
		t.Fatalf("Fractal failed: %s", err)
	}

	name := filepath.Base(path)
	if !strings.HasPrefix(name, "mandelbrot_fire_") || !strings.HasSuffix(name, "_8x6_std.png") {
		t.Errorf("name = %s, want mandelbrot_fire_<timestamp>_8x6_std.png", name)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("written file missing: %s", err)
	}
}

func TestFractalHighResSuffix(t *testing.T) {
	dir := t.TempDir()
	path, err := Fractal(dir, 4, 3, fractal.DefaultView(), fractal.Julia, fractal.Parameter{-0.8, 0.156}, palette.Grayscale, nil, true)
	if err != nil {
		t.Fatalf("Fractal failed: %s", err)
	}
	if !strings.HasSuffix(filepath.Base(path), "_highres.png") {
		t.Errorf("name = %s, want _highres.png suffix", filepath.Base(path))
	}
}

func TestThumbnail(t *testing.T) {
	pixels, err := fractal.Render(8, 8, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Classic, nil)
	if err != nil {
		t.Fatalf("Render failed: %s", err)
	}

	path := filepath.Join(t.TempDir(), "thumb.png")
	if err := Thumbnail(path, 8, 8, pixels, 4, 4); err != nil {
		t.Fatalf("Thumbnail failed: %s", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening thumbnail failed: %s", err)
	}
	defer file.Close()
	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decoding thumbnail failed: %s", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4", bounds)
	}
}

func TestThumbnailRejectsDegenerateSize(t *testing.T) {
	if err := Thumbnail(filepath.Join(t.TempDir(), "t.png"), 2, 2, make([]byte, 12), 0, 4); err == nil {
		t.Error("Thumbnail with zero width should fail")
	}
}
