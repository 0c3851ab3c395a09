package app

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/debug"
	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/internal/logger"
	"github.com/g0blinResearch/asciirender/internal/term"
	"github.com/g0blinResearch/asciirender/internal/world"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

const (
	eyeHeight = 1.5

	// fogPerChunk scales the fog horizon with the render distance so
	// chunk pop-in always happens inside the fog.
	fogPerChunk = 12.0

	forestMoveSpeed = 0.15
	maxExtraDist    = 4
)

// Forest is the first-person walk through the procedural world.
type Forest struct {
	cfg  *config.Config
	wld  *world.World
	cam  *camera.Camera
	rend *render.Renderer

	shots       *debug.Capture
	snapPending bool

	baseDist  int
	moveSpeed float64
	turnSpeed float64
}

// NewForest builds the world, camera and renderer from cfg, which
// must already be resolved and validated.
func NewForest(cfg *config.Config) (*Forest, error) {
	rc := render.DefaultConfig(cfg.Display.Width, cfg.Display.Height)
	rc.FOVDegrees = cfg.Display.FOV
	rc.FogDistance = fogPerChunk * float64(cfg.World.RenderDistance)
	rend, err := render.New(rc)
	if err != nil {
		return nil, fmt.Errorf("building renderer: %w", err)
	}

	wld := world.NewWorld(cfg.World.Seed, cfg.World.ChunkSize, cfg.World.RenderDistance)
	spawn := wld.Spawn()
	spawn.Y = eyeHeight

	moveSpeed := cfg.Camera.MoveSpeed
	if moveSpeed == 0 {
		moveSpeed = forestMoveSpeed
	}

	return &Forest{
		cfg:       cfg,
		wld:       wld,
		cam:       camera.New(spawn),
		rend:      rend,
		shots:     debug.NewCapture(snapshotDir, "forest"),
		baseDist:  cfg.World.RenderDistance,
		moveSpeed: moveSpeed,
		turnSpeed: cfg.Camera.TurnSpeed,
	}, nil
}

// Run owns the terminal until the player quits or a signal arrives.
func (f *Forest) Run() error {
	oak := f.wld.OakPosition()
	logger.Info("forest walk started",
		zap.Uint32("seed", f.cfg.World.Seed),
		zap.Int("renderDistance", f.baseDist),
		zap.Float64("chunkSize", f.wld.ChunkSize()),
		zap.Float64("oakX", oak.X),
		zap.Float64("oakZ", oak.Z),
		zap.Int("width", f.cfg.Display.Width),
		zap.Int("height", f.cfg.Display.Height),
	)

	held := term.NewHeldTracker(keyTimeout)
	return runLoop(f.cfg.Display.FPS, func(now time.Time, keys []term.Key, scr *term.Screen) (bool, error) {
		pressed := keys[:0]
		for _, k := range keys {
			switch {
			case isQuit(k):
				return true, nil
			case isSnapshot(k):
				f.snapPending = true
			default:
				pressed = append(pressed, k)
			}
		}
		held.Track(pressed, now)
		applyHeld(held, now, f.cam, f.moveSpeed, f.turnSpeed)

		f.update()
		frame := f.rend.RenderPerspective(f.wld, f.cam)
		if err := scr.Draw(frame, f.status()); err != nil {
			return true, err
		}
		f.snapshot(frame)
		return false, nil
	})
}

// RenderFrame advances the simulation n steps headless, then writes
// one frame plus the status line to out.
func (f *Forest) RenderFrame(n int, out io.Writer) error {
	for i := 0; i < n; i++ {
		f.update()
	}
	frame := f.rend.RenderPerspective(f.wld, f.cam)
	if _, err := out.Write(term.Plain(frame)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out, f.status())
	return err
}

// update walks the camera over the terrain, widens the render
// distance with altitude and streams the world around the player.
func (f *Forest) update() {
	p := &f.cam.Position
	p.Y = world.TerrainHeight(p.X, p.Z, f.cfg.World.Seed) + eyeHeight

	// See further from mountaintops.
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

	if removed := f.wld.Update(f.cam.Position, f.cam.Forward); len(removed) > 0 {
		logger.Debug("chunks evicted", zap.Int("count", len(removed)))
	}

	// The light rides with the camera so the forest reads the same
	// everywhere.
	f.rend.SetLightPos(math.Vec3{X: p.X + 5, Y: p.Y + 20, Z: p.Z + 5})
}

func (f *Forest) status() string {
	p := f.cam.Position
	return fmt.Sprintf("\x1b[7m FOREST \x1b[0m WASD=move Arrows=turn E/C=pitch "+
		"Chunks:%d(mtn:%d) Faces:%d Pos:(%.0f,%.1f,%.0f) Q=quit",
		f.wld.LoadedChunks(), f.wld.MountainChunks(), f.wld.LastFaceCount(),
		p.X, p.Y, p.Z)
}

func (f *Forest) snapshot(frame *render.Frame) {
	if !f.snapPending {
		return
	}
	f.snapPending = false
	path, err := f.shots.CaptureFrame(frame)
	if err != nil {
		logger.Warn("snapshot failed", zap.Error(err))
		return
	}
	logger.Info("snapshot saved", zap.String("path", path))
}
