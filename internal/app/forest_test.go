package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/g0blinResearch/asciirender/internal/config"
	"github.com/g0blinResearch/asciirender/internal/world"
)

func forestConfig() *config.Config {
	cfg := config.Default()
	cfg.Display.Width = 60
	cfg.Display.Height = 20
	return cfg
}

func TestForestCameraFollowsTerrain(t *testing.T) {
	f, err := NewForest(forestConfig())
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}

	f.update()
	want := world.TerrainHeight(6, 6, 42) + eyeHeight
	if got := f.cam.Position.Y; got != want {
		t.Errorf("eye height after update = %v, want %v", got, want)
	}
}

func TestForestWidensDistanceOnMountains(t *testing.T) {
	f, err := NewForest(forestConfig())
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}

	// The landmark peak is high enough to max out the altitude bonus.
	f.cam.Position.X = 6
	f.cam.Position.Z = 45
	f.update()

	if got := f.wld.RenderDistance(); got != f.baseDist+maxExtraDist {
		t.Errorf("render distance on peak = %d, want %d", got, f.baseDist+maxExtraDist)
	}
	wantFog := fogPerChunk * float64(f.baseDist+maxExtraDist)
	if got := f.rend.FogDistance(); got != wantFog {
		t.Errorf("fog distance on peak = %v, want %v", got, wantFog)
	}

	// Walking back to spawn restores the base-derived distance.
	f.cam.Position.X = 6
	f.cam.Position.Z = 6
	f.update()

	extra := int(f.cam.Position.Y / 4.0)
	if extra < 0 {
		extra = 0
	} else if extra > maxExtraDist {
		extra = maxExtraDist
	}
	if got := f.wld.RenderDistance(); got != f.baseDist+extra {
		t.Errorf("render distance at spawn = %d, want %d", got, f.baseDist+extra)
	}
}

func TestForestRenderFrameWritesFrameAndStatus(t *testing.T) {
	f, err := NewForest(forestConfig())
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}

	var buf bytes.Buffer
	if err := f.RenderFrame(2, &buf); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}

	out := buf.String()
	if got, want := strings.Count(out, "\n"), f.cfg.Display.Height+1; got != want {
		t.Errorf("line count = %d, want %d", got, want)
	}
	if !strings.Contains(out, " FOREST ") {
		t.Error("status line missing FOREST banner")
	}
	if !strings.Contains(out, "Chunks:") {
		t.Error("status line missing chunk diagnostics")
	}
	if f.wld.LoadedChunks() == 0 {
		t.Error("no chunks resident after two updates")
	}
}

func TestForestMoveSpeedDefaultsAndOverride(t *testing.T) {
	f, err := NewForest(forestConfig())
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}
	if f.moveSpeed != forestMoveSpeed {
		t.Errorf("default move speed = %v, want %v", f.moveSpeed, forestMoveSpeed)
	}

	cfg := forestConfig()
	cfg.Camera.MoveSpeed = 0.4
	f, err = NewForest(cfg)
	if err != nil {
		t.Fatalf("NewForest: %v", err)
	}
	if f.moveSpeed != 0.4 {
		t.Errorf("configured move speed = %v, want 0.4", f.moveSpeed)
	}
}
