// Command spinview renders a demo model as shaded ASCII, spinning
// under orthographic projection or explored with a free camera.
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
		modelName  = flag.String("model", "cube", "model to render: cube, car or house")
		size       = flag.Float64("size", 1.5, "model size multiplier")
		width      = flag.Int("width", 0, "frame width in columns (0 = terminal width)")
		height     = flag.Int("height", 0, "frame height in rows (0 = terminal height - 1)")
		fps        = flag.Int("fps", 30, "frames per second")
		fov        = flag.Float64("fov", 90, "horizontal field of view in degrees")
		speedX     = flag.Float64("speed-x", 0.01, "X rotation per frame in radians")
		speedY     = flag.Float64("speed-y", 0.03, "Y rotation per frame in radians")
		speedZ     = flag.Float64("speed-z", 0.02, "Z rotation per frame in radians")
		rotateZ    = flag.Bool("rotate-z", false, "enable Z-axis rotation")
		move       = flag.Bool("move", false, "start in free-camera mode")
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
		case "model":
			cfg.Model.Name = *modelName
		case "size":
			cfg.Model.Size = *size
		case "width":
			cfg.Display.Width = *width
		case "height":
			cfg.Display.Height = *height
		case "fps":
			cfg.Display.FPS = *fps
		case "fov":
			cfg.Display.FOV = *fov
		case "speed-x":
			cfg.Model.SpeedX = *speedX
		case "speed-y":
			cfg.Model.SpeedY = *speedY
		case "speed-z":
			cfg.Model.SpeedZ = *speedZ
		case "rotate-z":
			cfg.Model.RotateZ = *rotateZ
		case "move":
			cfg.Model.Move = *move
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

	v, err := app.NewViewer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *frameN >= 0 {
		err = v.RenderFrame(*frameN, os.Stdout)
	} else {
		err = v.Run()
	}
	if err != nil {
		logger.Error("viewer failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
