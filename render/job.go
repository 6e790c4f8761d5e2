package render

import (
	"FractalVisualizer/fractal"
	"FractalVisualizer/palette"
	"FractalVisualizer/save"
)

// Result is delivered once a background save finishes.
type Result struct {
	Path string
	Err  error
}

// Start renders and saves one fractal on its own goroutine and returns a
// channel that delivers the single Result. The channel is buffered, so a
// caller that loses interest can drop the handle without leaking the
// goroutine. There is no cancellation: a render started runs to completion.
//
// This is the high resolution save path of the interactive viewer; the
// render itself stays synchronous and the channel is the only concurrency.
func Start(dir string, width int, height int, view fractal.ViewRect, kind fractal.Kind, juliaC fractal.Parameter, pal palette.Palette, gradient *palette.Gradient, highRes bool) <-chan Result {
	done := make(chan Result, 1)
	go func() {
		path, err := save.Fractal(dir, width, height, view, kind, juliaC, pal, gradient, highRes)
		done <- Result{Path: path, Err: err}
	}()
	return done
}
