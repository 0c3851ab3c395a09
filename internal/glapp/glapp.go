// Package glapp implements the SDL2+OpenGL frontend: the same forest
// walk the terminal app renders, presented through the GPU pipeline.
// Simulation behavior mirrors internal/app exactly; only input and
// presentation differ.
package glapp

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/debug"
	"github.com/g0blinResearch/asciirender/internal/engine/glrender"
	"github.com/g0blinResearch/asciirender/internal/engine/input"
	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/internal/engine/window"
	"github.com/g0blinResearch/asciirender/internal/logger"
	"github.com/g0blinResearch/asciirender/internal/world"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

const (
	eyeHeight    = 1.5
	fogPerChunk  = 12.0
	maxExtraDist = 4

	// Per-frame speeds, paced by the same FPS ticker as the terminal
	// frontend so both walks feel identical.
	moveSpeed = 0.15
	turnSpeed = 0.05
)

// Forest drives the GPU presentation of the procedural world.
type Forest struct {
	cfg  *config.Config
	wld  *world.World
	cam  *camera.Camera
	win  *window.Window
	rend *glrender.Renderer
	in   *input.Input

	shots     *debug.Capture
	baseDist  int
	lastTitle time.Time
}

// New creates the window, GL renderer and world. The caller must
// Close the returned Forest.
func New(cfg *config.Config) (*Forest, error) {
	win, err := window.New(window.Config{
		Title:  "asciirender forest",
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	rc := render.DefaultConfig(cfg.Window.Width, cfg.Window.Height)
	rc.FOVDegrees = cfg.Display.FOV
	rc.FogDistance = fogPerChunk * float64(cfg.World.RenderDistance)

	rend, err := glrender.New(rc)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	rend.Resize(win.DrawableSize())

	wld := world.NewWorld(cfg.World.Seed, cfg.World.ChunkSize, cfg.World.RenderDistance)
	spawn := wld.Spawn()
	spawn.Y = eyeHeight

	return &Forest{
		cfg:      cfg,
		wld:      wld,
		cam:      camera.New(spawn),
		win:      win,
		rend:     rend,
		in:       input.New(),
		shots:    debug.NewCapture("snapshots", "glview"),
		baseDist: cfg.World.RenderDistance,
	}, nil
}

// Close releases the GL resources and the window.
func (f *Forest) Close() {
	if f.rend != nil {
		f.rend.Close()
	}
	if f.win != nil {
		f.win.Close()
	}
}

// Run owns the window until it closes or Escape/Q is pressed.
func (f *Forest) Run() error {
	logger.Info("gl forest started",
		zap.Uint32("seed", f.cfg.World.Seed),
		zap.Int("renderDistance", f.baseDist),
	)

	tick := time.NewTicker(time.Second / time.Duration(f.cfg.Display.FPS))
	defer tick.Stop()

	for {
		if f.in.Update() {
			return nil
		}
		for _, e := range f.in.Events() {
			if e.Type == input.EventWindowResize {
				f.rend.Resize(f.win.DrawableSize())
			}
		}
		if f.in.Pressed(sdl.SCANCODE_ESCAPE) || f.in.Pressed(sdl.SCANCODE_Q) {
			return nil
		}
		if f.in.Pressed(sdl.SCANCODE_P) {
			f.snapshot()
		}

		f.move()
		f.update()
		f.rend.Draw(f.cam)
		f.win.SwapBuffers()
		f.refreshTitle()

		<-tick.C
	}
}

func (f *Forest) move() {
	if f.in.Held(sdl.SCANCODE_W, sdl.SCANCODE_UP) {
		f.cam.MoveForward(moveSpeed)
	}
	if f.in.Held(sdl.SCANCODE_S, sdl.SCANCODE_DOWN) {
		f.cam.MoveForward(-moveSpeed)
	}
	if f.in.Held(sdl.SCANCODE_A) {
		f.cam.MoveRight(-moveSpeed)
	}
	if f.in.Held(sdl.SCANCODE_D) {
		f.cam.MoveRight(moveSpeed)
	}
	if f.in.Held(sdl.SCANCODE_LEFT) {
		f.cam.Turn(-turnSpeed, 0)
	}
	if f.in.Held(sdl.SCANCODE_RIGHT) {
		f.cam.Turn(turnSpeed, 0)
	}
	if f.in.Held(sdl.SCANCODE_E) {
		f.cam.Turn(0, turnSpeed)
	}
	if f.in.Held(sdl.SCANCODE_C) {
		f.cam.Turn(0, -turnSpeed)
	}
}

// update walks the camera over the terrain, widens the render
// distance with altitude and mirrors chunk residency into the GPU.
func (f *Forest) update() {
	p := &f.cam.Position
	p.Y = world.TerrainHeight(p.X, p.Z, f.cfg.World.Seed) + eyeHeight

	extra := int(p.Y / 4.0)
	if extra < 0 {
		extra = 0
	} else if extra > maxExtraDist {
		extra = maxExtraDist
	}
	if eff := f.baseDist + extra; eff != f.wld.RenderDistance() {
		f.wld.SetRenderDistance(eff)
		f.rend.SetFogDistance(fogPerChunk * float64(eff))
	}

	removed := f.wld.Update(f.cam.Position, f.cam.Forward)
	f.rend.SyncWorld(f.wld, removed)

	f.rend.SetLightPos(math.Vec3{X: p.X + 5, Y: p.Y + 20, Z: p.Z + 5})
}

func (f *Forest) refreshTitle() {
	if time.Since(f.lastTitle) < time.Second {
		return
	}
	f.lastTitle = time.Now()
	p := f.cam.Position
	f.win.SetTitle(fmt.Sprintf("asciirender forest | chunks %d | pos (%.0f,%.1f,%.0f)",
		f.wld.LoadedChunks(), p.X, p.Y, p.Z))
}

func (f *Forest) snapshot() {
	w, h := f.rend.Size()
	path, err := f.shots.CaptureFromPixels(f.rend.ReadPixels(), w, h)
	if err != nil {
		logger.Warn("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot saved", zap.String("path", path))
}
