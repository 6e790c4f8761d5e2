package main

import (
	"encoding/json"
	"fmt"

	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
	"FractalVisualizer/palette"
	"FractalVisualizer/render"
	"FractalVisualizer/save"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger   bslogger.Logger
	gradient *palette.Gradient
	kind     fractal.Kind
	pal      palette.Palette

	FractalType   string
	GradientEnd   string
	GradientStart string
	Height        int
	HighResHeight int
	HighResWidth  int
	JuliaParam    fractal.Parameter
	OutputDir     string
	Palette       string
	Region        string
	Sequence      *render.Sequence
	View          fractal.ViewRect
	Width         int
}

func NewSettings(settingsFile string) Settings {
	s := Settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	misc.CheckError(err, s.logger, misc.Fatal)
	misc.CheckError(json.Unmarshal(fileBytes, &s), s.logger, misc.Fatal)
	misc.CheckError(s.Verify(), s.logger, misc.Fatal)
	s.logger.Debug(s.String())
	return s
}

func (s *Settings) String() string {
	output := "\nVisualizer settings\n"
	output += fmt.Sprintf("Size: %dx%d (high-res %dx%d)\n", s.Width, s.Height, s.HighResWidth, s.HighResHeight)
	output += fmt.Sprintf("View: %s\n", s.View.String())
	output += fmt.Sprintf("Fractal: %s %v\n", s.FractalType, s.JuliaParam)
	output += fmt.Sprintf("Palette: %s\n", s.Palette)
	output += fmt.Sprintf("Output Dir: %s", s.OutputDir)
	return output
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("Settings", bslogger.Normal, nil)

	if s.Width <= 0 {
		s.Width = 800
	}
	if s.Height <= 0 {
		s.Height = 600
	}
	if s.HighResWidth <= 0 {
		s.HighResWidth = 3200
	}
	if s.HighResHeight <= 0 {
		s.HighResHeight = 2400
	}
	if width, height := s.View.Span(); width <= 0 || height <= 0 {
		s.View = fractal.DefaultView()
	}
	if s.Region != "" {
		view, ok := fractal.Regions[s.Region]
		if !ok {
			return fmt.Errorf("unknown region %s", s.Region)
		}
		s.View = view
	}

	if s.Palette == "" {
		s.Palette = "Classic"
	}
	pal, err := palette.Parse(s.Palette)
	if err != nil {
		return err
	}
	s.pal = pal

	if s.GradientStart != "" || s.GradientEnd != "" {
		gradient, err := palette.ParseHexGradient(s.GradientStart, s.GradientEnd)
		if err != nil {
			return err
		}
		s.gradient = &gradient
	} else if s.pal == palette.UserDefined {
		gradient := palette.DefaultGradient()
		s.gradient = &gradient
		s.logger.Info("No gradient supplied for the UserDefined palette. Using the default gradient.")
	}

	if s.FractalType == "" {
		s.FractalType = "Mandelbrot"
	}
	kind, err := fractal.ParseKind(s.FractalType)
	if err != nil {
		return err
	}
	s.kind = kind
	if s.kind == fractal.Julia && s.JuliaParam == (fractal.Parameter{}) {
		s.JuliaParam = fractal.Parameter{-0.8, 0.156}
	}

	if s.OutputDir == "" {
		s.OutputDir = save.DefaultDir
	}
	if s.Sequence != nil {
		misc.CheckError(s.Sequence.Verify(), s.logger, misc.Warning)
	}

	return nil
}
