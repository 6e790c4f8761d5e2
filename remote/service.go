package remote

import (
	"sync/atomic"

	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
	"FractalVisualizer/palette"

	"github.com/BrugadaSyndrome/bslogger"
)

// Request describes one render for a remote server to perform.
//
// Gradient is a value, not a pointer, because the gob codec cannot carry nil
// pointers; callers that do not use the UserDefined palette can leave it zero.
type Request struct {
	Width      int
	Height     int
	View       fractal.ViewRect
	Kind       fractal.Kind
	JuliaParam fractal.Parameter
	Palette    palette.Palette
	Gradient   palette.Gradient
}

// Reply carries the rendered buffer back to the caller.
type Reply struct {
	Pixels []byte
}

// Renderer is the rpc object a render server exposes. Renders are pure and
// independent, so concurrent calls from multiple clients need no coordination
// beyond the completed-render counter.
type Renderer struct {
	logger      bslogger.Logger
	renderCount int64
}

func NewRenderer() *Renderer {
	return &Renderer{
		logger: bslogger.NewLogger("Renderer", bslogger.Normal, nil),
	}
}

func (r *Renderer) Render(request Request, reply *Reply) error {
	gradient := request.Gradient
	if gradient == (palette.Gradient{}) {
		// Zero value means the client never set one
		gradient = palette.DefaultGradient()
	}
	pixels, err := fractal.Render(request.Width, request.Height, request.View, request.Kind, request.JuliaParam, request.Palette, &gradient)
	if err != nil {
		r.logger.Errorf("Rendering %dx%d - %s", request.Width, request.Height, err)
		return err
	}

	reply.Pixels = pixels
	count := atomic.AddInt64(&r.renderCount, 1)
	r.logger.Infof("Rendered %s %dx%d with palette %s [total renders: %d]", request.Kind, request.Width, request.Height, request.Palette, count)
	return nil
}

func (r *Renderer) RollCall(request misc.Nothing, reply *bool) error {
	*reply = true
	return nil
}
