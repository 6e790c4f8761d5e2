package fractal

// DefaultView frames the whole Mandelbrot set the way the viewer starts.
func DefaultView() ViewRect {
	return ViewRect{MinX: -2.5, MaxX: 1.0, MinY: -1.0, MaxY: 1.0}
}

// Classic landmarks in the Mandelbrot set, usable directly as render views or
// as zoom sequence targets.
var (
	// Seahorse Valley - dense filaments and repeating seahorse curls
	SeahorseValley = ViewRect{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15}

	// Elephant Valley - large bulb with trunk like tendrils
	ElephantValley = ViewRect{MinX: -1.85, MaxX: -1.75, MinY: -0.10, MaxY: -0.02}

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = ViewRect{MinX: -0.7435, MaxX: -0.7420, MinY: 0.1310, MaxY: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = ViewRect{MinX: -0.7480, MaxX: -0.7450, MinY: 0.0950, MaxY: 0.0980}
)

// Regions maps landmark names to their views for settings files and flags.
var Regions = map[string]ViewRect{
	"SeahorseValley": SeahorseValley,
	"ElephantValley": ElephantValley,
	"SpiralMinibrot": SpiralMinibrot,
	"TripleSpiral":   TripleSpiral,
}

func (v ViewRect) Center() (float64, float64) {
	return (v.MinX + v.MaxX) / 2.0, (v.MinY + v.MaxY) / 2.0
}

func (v ViewRect) Span() (float64, float64) {
	return v.MaxX - v.MinX, v.MaxY - v.MinY
}

// ZoomOut doubles the span of the view about its center.
func (v ViewRect) ZoomOut() ViewRect {
	cx, cy := v.Center()
	width, height := v.Span()
	return ViewRect{
		MinX: cx - width,
		MaxX: cx + width,
		MinY: cy - height,
		MaxY: cy + height,
	}
}

// Sub maps a normalized selection inside the view to the view it covers.
// Coordinates are fractions of the current span with x0 < x1 and y0 < y1;
// this is the zoom-to-selection math with the pointer handling left to the
// caller.
func (v ViewRect) Sub(x0 float64, y0 float64, x1 float64, y1 float64) ViewRect {
	width, height := v.Span()
	return ViewRect{
		MinX: v.MinX + x0*width,
		MaxX: v.MinX + x1*width,
		MinY: v.MinY + y0*height,
		MaxY: v.MinY + y1*height,
	}
}
