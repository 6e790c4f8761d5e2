package render

import (
	"math"

	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
)

// Sequence describes a zoom from one view to another, rendered as a series of
// frames for later assembly into an animation.
type Sequence struct {
	Start      fractal.ViewRect
	End        fractal.ViewRect
	FrameCount uint
}

func (s *Sequence) Verify() error {
	if width, height := s.Start.Span(); width <= 0 || height <= 0 {
		s.Start = fractal.DefaultView()
	}
	if width, height := s.End.Span(); width <= 0 || height <= 0 {
		s.End = fractal.SeahorseValley
	}
	if s.FrameCount == 0 {
		s.FrameCount = 1
	}
	return nil
}

// Frames interpolates the views of the sequence. The span shrinks (or grows)
// geometrically so the zoom advances at a constant perceived rate, while the
// center slides with exponential easing: decelerating into a zoom target,
// accelerating away when zooming out.
func (s *Sequence) Frames() []fractal.ViewRect {
	startWidth, startHeight := s.Start.Span()
	endWidth, endHeight := s.End.Span()
	startX, startY := s.Start.Center()
	endX, endY := s.End.Center()
	zoomingIn := endWidth < startWidth

	frames := make([]fractal.ViewRect, 0, s.FrameCount)
	var frame uint
	for frame = 1; frame <= s.FrameCount; frame++ {
		t := float64(frame) / float64(s.FrameCount)

		eased := misc.EaseOutExpo(t)
		if !zoomingIn {
			eased = misc.EaseInExpo(t)
		}
		centerX := misc.LerpFloat64(startX, endX, eased)
		centerY := misc.LerpFloat64(startY, endY, eased)

		width := startWidth * math.Pow(endWidth/startWidth, t)
		height := startHeight * math.Pow(endHeight/startHeight, t)

		frames = append(frames, fractal.ViewRect{
			MinX: centerX - width/2,
			MaxX: centerX + width/2,
			MinY: centerY - height/2,
			MaxY: centerY + height/2,
		})
	}
	return frames
}
