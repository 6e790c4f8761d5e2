package fractal

import (
	"encoding/json"
	"fmt"
	"strings"

	"FractalVisualizer/palette"
)

// Escape-time constants. Both are part of the visual contract: changing
// either changes every rendered image, so neither is configurable.
const (
	// MaxIterations is also the interior sentinel; a pixel that reaches it
	// never escaped and renders black.
	MaxIterations = 255

	// boundary is the squared escape radius of 2
	boundary = 4.0
)

const (
	Mandelbrot Kind = iota
	Julia
)

// Kind selects which recurrence a render runs. Julia additionally needs the
// fixed complex constant c; Mandelbrot ignores it.
type Kind int

func (k Kind) String() string {
	names := []string{"Mandelbrot", "Julia"}
	if k < 0 || int(k) >= len(names) {
		// A corrupted remote request can carry any value; logging it must
		// not panic the connection handler.
		return "Unknown"
	}
	return names[k]
}

func ParseKind(name string) (Kind, error) {
	for i, n := range []string{"Mandelbrot", "Julia"} {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return Mandelbrot, fmt.Errorf("unknown fractal type %s", name)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Parameter is the complex constant c of a Julia render, stored as a
// [re, im] pair so favorite files keep their original layout.
type Parameter [2]float64

// ViewRect is the rectangular window over the complex plane being rendered.
// Callers are expected to pass MaxX > MinX and MaxY > MinY; inverted or empty
// rectangles still render, just degenerately.
type ViewRect struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

func (v *ViewRect) String() string {
	output := "{ViewRect "
	output += fmt.Sprintf("X: [%f, %f] ", v.MinX, v.MaxX)
	output += fmt.Sprintf("Y: [%f, %f]}", v.MinY, v.MaxY)
	return output
}

// Render computes the escape-time image of the view and returns it as a flat
// row-major RGB buffer of width*height*3 bytes. Pixel (0, 0) samples exactly
// the (MinX, MinY) corner; there is no half-pixel centering.
//
// The call is synchronous and deterministic: identical inputs produce
// identical bytes, which is what makes saved images and re-rendered favorites
// reproduce pixel for pixel. Callers that want responsiveness run the whole
// call on their own goroutine (see the render package).
func Render(width int, height int, view ViewRect, kind Kind, juliaC Parameter, pal palette.Palette, gradient *palette.Gradient) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("degenerate image size %dx%d", width, height)
	}

	pixels := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		im := view.MinY + float64(y)/float64(height)*(view.MaxY-view.MinY)
		for x := 0; x < width; x++ {
			re := view.MinX + float64(x)/float64(width)*(view.MaxX-view.MinX)

			// Mandelbrot iterates from the origin with the sample point as c;
			// Julia iterates from the sample point with the fixed constant c.
			var zx, zy, cx, cy float64
			if kind == Julia {
				zx, zy = re, im
				cx, cy = juliaC[0], juliaC[1]
			} else {
				cx, cy = re, im
			}

			pixel := palette.Map(escapeTime(zx, zy, cx, cy), pal, gradient)
			offset := (y*width + x) * 3
			pixels[offset] = pixel.R
			pixels[offset+1] = pixel.G
			pixels[offset+2] = pixel.B
		}
	}

	return pixels, nil
}

// escapeTime iterates z = z^2 + c until |z|^2 reaches the boundary or the
// iteration cap, and returns the number of iterations performed. A point that
// escapes before the first iteration counts zero.
func escapeTime(zx float64, zy float64, cx float64, cy float64) uint8 {
	iteration := 0
	for zx*zx+zy*zy < boundary && iteration < MaxIterations {
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
		iteration++
	}
	return uint8(iteration)
}
