package palette

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient holds the two endpoint colors of the UserDefined palette.
type Gradient struct {
	Start color.RGBA
	End   color.RGBA
}

// DefaultGradient is the cyan to magenta ramp the viewer starts with.
func DefaultGradient() Gradient {
	return Gradient{
		Start: color.RGBA{R: 0, G: 255, B: 255, A: 255},
		End:   color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// ParseHexGradient builds a gradient from two hex color strings such as
// "#00ffff". This is the form gradients take in settings files.
func ParseHexGradient(start string, end string) (Gradient, error) {
	startColor, err := colorful.Hex(start)
	if err != nil {
		return Gradient{}, fmt.Errorf("unable to parse gradient start color %s - %s", start, err)
	}
	endColor, err := colorful.Hex(end)
	if err != nil {
		return Gradient{}, fmt.Errorf("unable to parse gradient end color %s - %s", end, err)
	}

	sr, sg, sb := startColor.RGB255()
	er, eg, eb := endColor.RGB255()
	return Gradient{
		Start: color.RGBA{R: sr, G: sg, B: sb, A: 255},
		End:   color.RGBA{R: er, G: eg, B: eb, A: 255},
	}, nil
}

func (g *Gradient) String() string {
	output := "{Gradient "
	output += fmt.Sprintf("Start: %v ", g.Start)
	output += fmt.Sprintf("End: %v}", g.End)
	return output
}

// at blends the endpoints as start*(1-t) + end*t. The blend is written in
// this exact form rather than start+(end-start)*t; the two differ in the last
// float bit and the truncation below would expose it.
func (g *Gradient) at(t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(g.Start.R)*(1-t) + float64(g.End.R)*t),
		G: uint8(float64(g.Start.G)*(1-t) + float64(g.End.G)*t),
		B: uint8(float64(g.Start.B)*(1-t) + float64(g.End.B)*t),
		A: 255,
	}
}
