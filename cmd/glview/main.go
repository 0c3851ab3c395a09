// Command glview walks the procedural forest in an SDL2 window,
// rendering through OpenGL instead of the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/glapp"
	"github.com/g0blinResearch/asciirender/internal/logger"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		width      = flag.Int("width", 1280, "window width in pixels")
		height     = flag.Int("height", 720, "window height in pixels")
		fps        = flag.Int("fps", 30, "simulation steps per second")
		fov        = flag.Float64("fov", 90, "horizontal field of view in degrees")
		seed       = flag.Uint("seed", 42, "world seed")
		renderDist = flag.Int("render-dist", 2, "chunk render distance")
		vsync      = flag.Bool("vsync", true, "enable vertical sync")
		logFile    = flag.String("log-file", "", "log file path")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line override the config file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "fps":
			cfg.Display.FPS = *fps
		case "fov":
			cfg.Display.FOV = *fov
		case "seed":
			cfg.World.Seed = uint32(*seed)
		case "render-dist":
			cfg.World.RenderDistance = *renderDist
		case "vsync":
			cfg.Window.VSync = *vsync
		case "log-file":
			cfg.Logging.LogFile = *logFile
		}
	})
	if *debug {
		cfg.Logging.Level = "debug"
	}

	// The window owns no terminal, so the display section keeps its
	// defaults; only the validation of shared fields matters here.
	cfg.ResolveDisplay(80, 24)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, true); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	f, err := glapp.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	if err := f.Run(); err != nil {
		logger.Error("gl forest failed", zap.Error(err))
		os.Exit(1)
	}
}
