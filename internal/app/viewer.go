package app

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/debug"
	"github.com/g0blinResearch/asciirender/internal/engine/model"
	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/internal/logger"
	"github.com/g0blinResearch/asciirender/internal/term"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

type viewerMode uint8

const (
	modeSpin viewerMode = iota // auto-rotation, orthographic
	modeMove                   // free camera, perspective
)

// Viewer displays one static model, auto-spinning under orthographic
// projection or explored with a free perspective camera. Tab toggles
// between the two.
type Viewer struct {
	cfg  *config.Config
	mdl  *model.Model
	cam  *camera.Camera
	rend *render.Renderer
	mode viewerMode

	shots       *debug.Capture
	snapPending bool

	moveSpeed float64
	turnSpeed float64
}

// NewViewer builds the model named by cfg and a renderer fitted to
// it. The config must already be resolved and validated.
func NewViewer(cfg *config.Config) (*Viewer, error) {
	mdl, err := buildModel(cfg.Model)
	if err != nil {
		return nil, err
	}

	rc := render.DefaultConfig(cfg.Display.Width, cfg.Display.Height)
	rc.FOVDegrees = cfg.Display.FOV
	rend, err := render.New(rc)
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}
	rend.FitTo(mdl)

	// Start far enough back that the whole model is in view, with
	// speeds scaled to its size for a consistent feel.
	radius := mdl.BoundingRadius()
	cam := camera.New(math.Vec3{Y: radius * 0.3, Z: radius * 3})

	moveSpeed := cfg.Camera.MoveSpeed
	if moveSpeed == 0 {
		moveSpeed = radius * 0.06
	}

	mode := modeSpin
	if cfg.Model.Move {
		mode = modeMove
	}

	return &Viewer{
		cfg:       cfg,
		mdl:       mdl,
		cam:       cam,
		rend:      rend,
		mode:      mode,
		shots:     debug.NewCapture(snapshotDir, "viewer"),
		moveSpeed: moveSpeed,
		turnSpeed: cfg.Camera.TurnSpeed,
	}, nil
}

func buildModel(mc config.ModelConfig) (*model.Model, error) {
	switch mc.Name {
	case "cube":
		return model.NewCube(mc.Size), nil
	case "car":
		return model.NewCar(mc.Size), nil
	case "house":
		return model.NewHouse(mc.Size), nil
	}
	return nil, fmt.Errorf("unknown model %q", mc.Name)
}

// Run owns the terminal until the user quits or a signal arrives.
func (v *Viewer) Run() error {
	logger.Info("viewer started",
		zap.String("model", v.cfg.Model.Name),
		zap.Float64("size", v.cfg.Model.Size),
	)

	held := term.NewHeldTracker(keyTimeout)
	return runLoop(v.cfg.Display.FPS, func(now time.Time, keys []term.Key, scr *term.Screen) (bool, error) {
		pressed := keys[:0]
		for _, k := range keys {
			switch {
			case isQuit(k):
				return true, nil
			case isModeToggle(k):
				v.toggleMode()
			case isSnapshot(k):
				v.snapPending = true
			default:
				pressed = append(pressed, k)
			}
		}
		held.Track(pressed, now)
		if v.mode == modeMove {
			applyHeld(held, now, v.cam, v.moveSpeed, v.turnSpeed)
		}

		v.update()
		frame := v.renderFrame()
		if err := scr.Draw(frame, v.status()); err != nil {
			return true, err
		}
		v.snapshot(frame)
		return false, nil
	})
}

// RenderFrame advances the model n spin steps headless, then writes
// one frame plus the status line to out.
func (v *Viewer) RenderFrame(n int, out io.Writer) error {
	for i := 0; i < n; i++ {
		v.update()
	}
	frame := v.renderFrame()
	if _, err := out.Write(term.Plain(frame)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, v.status())
	return err
}

func (v *Viewer) toggleMode() {
	if v.mode == modeSpin {
		v.mode = modeMove
	} else {
		v.mode = modeSpin
	}
}

func (v *Viewer) update() {
	if v.mode != modeSpin {
		return
	}
	sz := 0.0
	if v.cfg.Model.RotateZ {
		sz = v.cfg.Model.SpeedZ
	}
	v.mdl.Rotate(v.cfg.Model.SpeedX, v.cfg.Model.SpeedY, sz)
}

func (v *Viewer) renderFrame() *render.Frame {
	if v.mode == modeMove {
		return v.rend.RenderPerspective(v.mdl, v.cam)
	}
	return v.rend.RenderOrtho(v.mdl)
}

func (v *Viewer) status() string {
	if v.mode == modeMove {
		return "\x1b[7m MOVE \x1b[0m WASD=move Arrows=turn R/F=up/dn E/C=pitch Tab=spin Q=quit"
	}
	return "\x1b[7m SPIN \x1b[0m Tab=move Q=quit"
}

func (v *Viewer) snapshot(frame *render.Frame) {
	if !v.snapPending {
		return
	}
	v.snapPending = false
	path, err := v.shots.CaptureFrame(frame)
	if err != nil {
		logger.Warn("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot saved", zap.String("path", path))
}
