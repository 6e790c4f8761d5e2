package save

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FractalVisualizer/fractal"
	"FractalVisualizer/palette"

	xdraw "golang.org/x/image/draw"
)

// DefaultDir is where renders and favorites land when no directory is given,
// matching the directory earlier viewer versions used.
const DefaultDir = "0_fractals"

// timestampFormat produces names like 20260823_154210 that sort by creation
const timestampFormat = "20060102_150405"

// PNG writes a flat row-major RGB buffer as a PNG file.
func PNG(path string, width int, height int, pixels []byte) error {
	if len(pixels) != width*height*3 {
		return fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d", len(pixels), width*height*3, width, height)
	}
	return writePNG(path, toImage(width, height, pixels))
}

// Fractal renders the view and saves it under dir with the canonical name
// mandelbrot_<palette>_<timestamp>_<width>x<height>_<std|highres>.png,
// creating dir as needed. It returns the path of the written file.
func Fractal(dir string, width int, height int, view fractal.ViewRect, kind fractal.Kind, juliaC fractal.Parameter, pal palette.Palette, gradient *palette.Gradient, highRes bool) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("unable to create folder %s - %s", dir, err)
	}

	pixels, err := fractal.Render(width, height, view, kind, juliaC, pal, gradient)
	if err != nil {
		return "", err
	}

	resolution := "std"
	if highRes {
		resolution = "highres"
	}
	name := fmt.Sprintf("mandelbrot_%s_%s_%dx%d_%s.png",
		strings.ToLower(pal.String()), time.Now().Format(timestampFormat), width, height, resolution)
	path := filepath.Join(dir, name)

	if err := writePNG(path, toImage(width, height, pixels)); err != nil {
		return "", err
	}
	return path, nil
}

// Thumbnail writes a bilinear downscale of a rendered buffer, used as the
// preview image next to an exported favorite.
func Thumbnail(path string, width int, height int, pixels []byte, thumbWidth int, thumbHeight int) error {
	if len(pixels) != width*height*3 {
		return fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d", len(pixels), width*height*3, width, height)
	}
	if thumbWidth <= 0 || thumbHeight <= 0 {
		return fmt.Errorf("degenerate thumbnail size %dx%d", thumbWidth, thumbHeight)
	}

	source := toImage(width, height, pixels)
	thumb := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	xdraw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), source, source.Bounds(), xdraw.Src, nil)
	return writePNG(path, thumb)
}

func toImage(width int, height int, pixels []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := (y*width + x) * 3
			img.SetRGBA(x, y, color.RGBA{R: pixels[offset], G: pixels[offset+1], B: pixels[offset+2], A: 255})
		}
	}
	return img
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s - %s", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("unable to encode %s - %s", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to close %s - %s", path, err)
	}
	return nil
}
