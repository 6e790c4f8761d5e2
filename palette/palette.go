package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"
)

const (
	Classic Palette = iota
	Fire
	Ocean
	Forest
	Rainbow
	Pastel
	Sunset
	Ice
	Neon
	Grayscale
	UserDefined
)

// interior is the iteration count of a point that never escaped. Such points
// are always painted black, no matter which palette is selected.
const interior = 255

type Palette int

func (p Palette) String() string {
	return []string{
		"Classic", "Fire", "Ocean", "Forest", "Rainbow", "Pastel", "Sunset", "Ice", "Neon", "Grayscale", "UserDefined",
	}[p]
}

// Names lists every palette in declaration order. Useful for menus and for
// validating user input.
var Names = []string{
	"Classic", "Fire", "Ocean", "Forest", "Rainbow", "Pastel", "Sunset", "Ice", "Neon", "Grayscale", "UserDefined",
}

func Parse(name string) (Palette, error) {
	for i, n := range Names {
		if strings.EqualFold(n, name) {
			return Palette(i), nil
		}
	}
	return Classic, fmt.Errorf("unknown palette %s", name)
}

// Palettes are stored in settings and favorite files by variant name so the
// files stay readable and stay compatible with earlier viewer versions.
func (p Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Palette) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Map converts an escape-time iteration count into the color for the selected
// palette. Counts of 255 mark interior points and always map to black.
//
// Channel math runs in float64 and converts to bytes by truncation. The
// truncation is intentional: every image ever saved was produced this way, so
// rounding instead would shift pixels in re-rendered favorites.
//
// UserDefined blends between the two gradient endpoints; a nil gradient falls
// back to DefaultGradient so a caller mistake degrades instead of crashing.
func Map(iteration uint8, p Palette, gradient *Gradient) color.RGBA {
	if iteration == interior {
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	}

	i := float64(iteration)
	t := i / 255.0
	switch p {
	case Classic:
		return color.RGBA{R: iteration, G: 0, B: 255 - iteration, A: 255}
	case Fire:
		return color.RGBA{R: 255, G: uint8(i * 0.7), B: uint8(i * 0.1), A: 255}
	case Ocean:
		return color.RGBA{R: 0, G: uint8(i * 0.5), B: uint8(i * 0.9), A: 255}
	case Forest:
		return color.RGBA{R: uint8(i * 0.2), G: uint8(i * 0.8), B: uint8(i * 0.3), A: 255}
	case Rainbow:
		return color.RGBA{
			R: uint8(9.0 * (1 - t) * t * t * t * 255.0),
			G: uint8(15.0 * (1 - t) * (1 - t) * t * t * 255.0),
			B: uint8(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255.0),
			A: 255,
		}
	case Pastel:
		green := 0
		if iteration < 200 {
			green = 200 - int(iteration)
		}
		return color.RGBA{R: 200, G: uint8(green), B: uint8(255 - int(iteration)/2), A: 255}
	case Sunset:
		return color.RGBA{R: uint8(255.0 * t), G: uint8(100.0*(1-t) + 50.0*t), B: uint8(50.0 * (1 - t)), A: 255}
	case Ice:
		return color.RGBA{R: uint8(180.0*(1-t) + 200.0*t), G: uint8(220.0 * t), B: uint8(255.0 * t), A: 255}
	case Neon:
		return color.RGBA{R: uint8(255.0 * (1 - t)), G: uint8(255.0 * t), B: uint8(255.0 * (1 - t) * t), A: 255}
	case Grayscale:
		return color.RGBA{R: iteration, G: iteration, B: iteration, A: 255}
	case UserDefined:
		if gradient == nil {
			fallback := DefaultGradient()
			gradient = &fallback
		}
		return gradient.at(t)
	}

	// Out of range palette values paint black
	return color.RGBA{R: 0, G: 0, B: 0, A: 255}
}
