package render

import (
	"os"
	"testing"
	"time"

	"FractalVisualizer/fractal"
	"FractalVisualizer/palette"
)

func TestStartDeliversResult(t *testing.T) {
	dir := t.TempDir()
	job := Start(dir, 8, 6, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Classic, nil, true)

	select {
	case result := <-job:
		if result.Err != nil {
			t.Fatalf("job failed: %s", result.Err)
		}
		if _, err := os.Stat(result.Path); err != nil {
			t.Errorf("result path missing: %s", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("job never delivered a result")
	}
}

func TestStartDeliversError(t *testing.T) {
	job := Start(t.TempDir(), 0, 6, fractal.DefaultView(), fractal.Mandelbrot, fractal.Parameter{}, palette.Classic, nil, false)

	select {
	case result := <-job:
		if result.Err == nil {
			t.Error("job with zero width should fail")
		}
	case <-time.After(30 * time.Second):
		t.Fatal("job never delivered a result")
	}
}
