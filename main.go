package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"FractalVisualizer/favorite"
	"FractalVisualizer/fractal"
	"FractalVisualizer/misc"
	"FractalVisualizer/palette"
	"FractalVisualizer/remote"
	"FractalVisualizer/render"
	"FractalVisualizer/save"

	"github.com/BrugadaSyndrome/bslogger"
)

var (
	fractalType, gradientEnd, gradientStart, outputDir, paletteName, region, settingsFile string
	connectAddress, importFavoritePath, serveAddress, serveWsAddress                      string
	height, width                                                                        int
	juliaIm, juliaRe, maxX, maxY, minX, minY                                             float64
	frameCount                                                                           uint
	exportFavorite, highRes, listFavorites, runSequence, serve                            bool
)

func main() {
	parseArguments()
	logger := bslogger.NewLogger("FractalVisualizer", bslogger.Normal, nil)

	var settings Settings
	if settingsFile != "" {
		settings = NewSettings(settingsFile)
	} else {
		settings = settingsFromFlags()
	}

	switch {
	case listFavorites:
		showFavorites(settings, logger)
	case importFavoritePath != "":
		renderFavorite(settings, logger)
	case serve:
		runServer(logger)
	case connectAddress != "":
		renderRemote(settings, logger)
	case runSequence:
		renderSequence(settings, logger)
	case exportFavorite:
		saveFavorite(settings, logger)
	default:
		renderOnce(settings, logger)
	}
}

func parseArguments() {
	// Render values
	flag.StringVar(&settingsFile, "settings", "", "Json file with visualizer settings; overrides the render flags below")
	flag.IntVar(&width, "width", 800, "Width of resulting image")
	flag.IntVar(&height, "height", 600, "Height of resulting image")
	flag.Float64Var(&minX, "minX", -2.5, "Left edge of the view on the real axis")
	flag.Float64Var(&maxX, "maxX", 1.0, "Right edge of the view on the real axis")
	flag.Float64Var(&minY, "minY", -1.0, "Bottom edge of the view on the imaginary axis")
	flag.Float64Var(&maxY, "maxY", 1.0, "Top edge of the view on the imaginary axis")
	flag.StringVar(&region, "region", "", "Named landmark view (SeahorseValley, ElephantValley, SpiralMinibrot, TripleSpiral)")
	flag.StringVar(&paletteName, "palette", "Classic", "Color palette: "+strings.Join(palette.Names, ", "))
	flag.StringVar(&gradientStart, "gradientStart", "", "Hex start color for the UserDefined palette (#00ffff)")
	flag.StringVar(&gradientEnd, "gradientEnd", "", "Hex end color for the UserDefined palette (#ff00ff)")
	flag.StringVar(&fractalType, "fractalType", "Mandelbrot", "Fractal to render: Mandelbrot or Julia")
	flag.Float64Var(&juliaRe, "juliaRe", -0.8, "Real part of the Julia parameter c")
	flag.Float64Var(&juliaIm, "juliaIm", 0.156, "Imaginary part of the Julia parameter c")
	flag.StringVar(&outputDir, "outputDir", save.DefaultDir, "Directory for images and favorites")
	flag.BoolVar(&highRes, "highRes", false, "Render at high resolution on a background job")

	// Sequence values
	flag.BoolVar(&runSequence, "sequence", false, "Render a zoom sequence from the default view into the selected view")
	flag.UintVar(&frameCount, "frames", 60, "Number of frames in the zoom sequence")

	// Favorite values
	flag.BoolVar(&exportFavorite, "exportFavorite", false, "Export the selected view as a favorite")
	flag.StringVar(&importFavoritePath, "importFavorite", "", "Favorite json file to render")
	flag.BoolVar(&listFavorites, "listFavorites", false, "List favorite files in the output directory")

	// Remote values
	flag.BoolVar(&serve, "serve", false, "Run a render server")
	flag.StringVar(&serveAddress, "serveAddress", "", "Address for the render server (defaults to the local address on port 51000)")
	flag.StringVar(&serveWsAddress, "serveWs", "", "Optional http address for a websocket render endpoint, e.g. :8080")
	flag.StringVar(&connectAddress, "connect", "", "Address of a render server to render on instead of locally")

	flag.Parse()
}

func settingsFromFlags() Settings {
	settings := Settings{
		FractalType:   fractalType,
		GradientEnd:   gradientEnd,
		GradientStart: gradientStart,
		Height:        height,
		JuliaParam:    fractal.Parameter{juliaRe, juliaIm},
		OutputDir:     outputDir,
		Palette:       paletteName,
		Region:        region,
		View:          fractal.ViewRect{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY},
		Width:         width,
	}
	logger := bslogger.NewLogger("Settings", bslogger.Normal, nil)
	misc.CheckError(settings.Verify(), logger, misc.Fatal)
	return settings
}

func renderOnce(settings Settings, logger bslogger.Logger) {
	if highRes {
		job := render.Start(settings.OutputDir, settings.HighResWidth, settings.HighResHeight,
			settings.View, settings.kind, settings.JuliaParam, settings.pal, settings.gradient, true)
		logger.Infof("Rendering %dx%d in the background", settings.HighResWidth, settings.HighResHeight)
		result := <-job
		misc.CheckError(result.Err, logger, misc.Fatal)
		logger.Infof("Saved image to %s", result.Path)
		return
	}

	path, err := save.Fractal(settings.OutputDir, settings.Width, settings.Height,
		settings.View, settings.kind, settings.JuliaParam, settings.pal, settings.gradient, false)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Saved image to %s", path)
}

func renderSequence(settings Settings, logger bslogger.Logger) {
	sequence := settings.Sequence
	if sequence == nil {
		sequence = &render.Sequence{
			Start:      fractal.DefaultView(),
			End:        settings.View,
			FrameCount: frameCount,
		}
		misc.CheckError(sequence.Verify(), logger, misc.Fatal)
	}

	runDir := filepath.Join(settings.OutputDir, "sequence_"+time.Now().Format("20060102_150405"))
	misc.CheckError(os.MkdirAll(runDir, os.ModePerm), logger, misc.Fatal)
	startTime := time.Now()

	for number, view := range sequence.Frames() {
		pixels, err := fractal.Render(settings.Width, settings.Height, view,
			settings.kind, settings.JuliaParam, settings.pal, settings.gradient)
		misc.CheckError(err, logger, misc.Fatal)

		path := filepath.Join(runDir, fmt.Sprintf("%d.png", number+1))
		misc.CheckError(save.PNG(path, settings.Width, settings.Height, pixels), logger, misc.Fatal)
		logger.Infof("Saved frame %d/%d", number+1, sequence.FrameCount)
	}

	logger.Infof("Rendered %d frames to %s in %s", sequence.FrameCount, runDir, time.Since(startTime))
}

func saveFavorite(settings Settings, logger bslogger.Logger) {
	fav := favorite.Favorite{
		View:       settings.View,
		Palette:    settings.pal,
		Kind:       settings.kind,
		JuliaParam: settings.JuliaParam,
	}
	path, err := favorite.Export(settings.OutputDir, fav)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Favorite saved as %s", path)

	// Small preview next to the json so favorites are recognizable at a glance
	pixels, err := fractal.Render(settings.Width, settings.Height, settings.View,
		settings.kind, settings.JuliaParam, settings.pal, settings.gradient)
	misc.CheckError(err, logger, misc.Fatal)
	preview := strings.TrimSuffix(path, ".json") + ".png"
	misc.CheckError(save.Thumbnail(preview, settings.Width, settings.Height, pixels, 160, 120), logger, misc.Warning)
}

func renderFavorite(settings Settings, logger bslogger.Logger) {
	fav, err := favorite.Import(importFavoritePath)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Imported favorite %s", fav.String())

	path, err := save.Fractal(settings.OutputDir, settings.Width, settings.Height,
		fav.View, fav.Kind, fav.JuliaParam, fav.Palette, settings.gradient, false)
	misc.CheckError(err, logger, misc.Fatal)
	logger.Infof("Saved image to %s", path)
}

func showFavorites(settings Settings, logger bslogger.Logger) {
	files := favorite.List(settings.OutputDir)
	if len(files) == 0 {
		logger.Infof("No favorite json files found in %s", settings.OutputDir)
		return
	}
	for _, file := range files {
		fmt.Println(file)
	}
}

func runServer(logger bslogger.Logger) {
	server := remote.NewServer(remote.Settings{
		Address:          serveAddress,
		WebsocketAddress: serveWsAddress,
	})
	misc.CheckError(server.Run(), logger, misc.Fatal)

	// Serve until killed
	select {}
}

func renderRemote(settings Settings, logger bslogger.Logger) {
	request := remote.Request{
		Width:      settings.Width,
		Height:     settings.Height,
		View:       settings.View,
		Kind:       settings.kind,
		JuliaParam: settings.JuliaParam,
		Palette:    settings.pal,
	}
	if settings.gradient != nil {
		request.Gradient = *settings.gradient
	}

	pixels, err := remote.Render(connectAddress, request)
	misc.CheckError(err, logger, misc.Fatal)

	path := filepath.Join(settings.OutputDir, fmt.Sprintf("remote_%s.png", time.Now().Format("20060102_150405")))
	misc.CheckError(save.PNG(path, settings.Width, settings.Height, pixels), logger, misc.Fatal)
	logger.Infof("Saved image to %s", path)
}
