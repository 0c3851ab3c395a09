// Command asciiworld walks an endless procedural forest rendered as
// shaded ASCII in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/app"
	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/logger"
	"github.com/g0blinResearch/asciirender/internal/term"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		width      = flag.Int("width", 0, "frame width in columns (0 = terminal width)")
		height     = flag.Int("height", 0, "frame height in rows (0 = terminal height - 1)")
		fps        = flag.Int("fps", 30, "frames per second")
		fov        = flag.Float64("fov", 90, "horizontal field of view in degrees")
		seed       = flag.Uint("seed", 42, "world seed")
		renderDist = flag.Int("render-dist", 2, "chunk render distance")
		frameN     = flag.Int("frame", -1, "advance N frames headless, print one frame and exit")
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
			cfg.Display.Width = *width
		case "height":
			cfg.Display.Height = *height
		case "fps":
			cfg.Display.FPS = *fps
		case "fov":
			cfg.Display.FOV = *fov
		case "seed":
			cfg.World.Seed = uint32(*seed)
		case "render-dist":
			cfg.World.RenderDistance = *renderDist
		case "log-file":
			cfg.Logging.LogFile = *logFile
		}
	})
	if *debug {
		cfg.Logging.Level = "debug"
	}

	cfg.ResolveDisplay(term.Size())
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Frames own stdout, so the console logger stays off.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	f, err := app.NewForest(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *frameN >= 0 {
		err = f.RenderFrame(*frameN, os.Stdout)
	} else {
		err = f.Run()
	}
	if err != nil {
		logger.Error("forest walk failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
