package render

import (
	"testing"

	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

func TestBuildMeshBuffersFanTriangulation(t *testing.T) {
	quad := MakeFace(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 1, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	tri := MakeWireFace(WireTerrain,
		math.Vec3{X: 2, Y: 0, Z: 0},
		math.Vec3{X: 3, Y: 0, Z: 0},
		math.Vec3{X: 2, Y: 0, Z: 1},
	)

	cfg := DefaultConfig(40, 20)
	mb := BuildMeshBuffers([]Face{quad, tri}, cfg)

	wantIdx := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6}
	if len(mb.Indices) != len(wantIdx) {
		t.Fatalf("index count = %d, want %d", len(mb.Indices), len(wantIdx))
	}
	for i, ix := range mb.Indices {
		if ix != wantIdx[i] {
			t.Errorf("index %d = %d, want %d", i, ix, wantIdx[i])
		}
	}

	if got := len(mb.Positions); got != 21 {
		t.Errorf("position floats = %d, want 21", got)
	}
	if len(mb.Normals) != len(mb.Positions) {
		t.Errorf("normal floats = %d, want %d", len(mb.Normals), len(mb.Positions))
	}
	if len(mb.Colors) != len(mb.Positions) {
		t.Errorf("color floats = %d, want %d", len(mb.Colors), len(mb.Positions))
	}

	// Every vertex of the quad carries the face normal.
	for v := 0; v < 4; v++ {
		nz := mb.Normals[v*3+2]
		if nz != float32(quad.Normal.Z) {
			t.Errorf("vertex %d normal z = %v, want %v", v, nz, quad.Normal.Z)
		}
	}
}

func TestBuildMeshBuffersResolvesStyleColors(t *testing.T) {
	fill := MakeFace(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	terrain := MakeWireFace(WireTerrain,
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)
	path := MakeWireFace(WirePath,
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 1},
	)

	cfg := DefaultConfig(40, 20)
	mb := BuildMeshBuffers([]Face{fill, terrain, path}, cfg)

	if got := mb.Colors[0]; got != cfg.FillColor[0] {
		t.Errorf("fill red = %v, want %v", got, cfg.FillColor[0])
	}
	if got := mb.Colors[9]; got != float32(cfg.TerrainStyle.R)/255 {
		t.Errorf("terrain red = %v, want %v", got, float32(cfg.TerrainStyle.R)/255)
	}
	if got := mb.Colors[18]; got != float32(cfg.PathStyle.R)/255 {
		t.Errorf("path red = %v, want %v", got, float32(cfg.PathStyle.R)/255)
	}
}

func TestBuildFrameUniformsViewMatrix(t *testing.T) {
	cfg := DefaultConfig(40, 20)

	cam := camera.New(math.Vec3{})
	u := BuildFrameUniforms(cam, cfg)

	// Identity basis looking down -Z: rows map x to x, y to y and
	// depth to -z, with no translation.
	if u.View[0] != 1 || u.View[5] != 1 || u.View[10] != -1 || u.View[15] != 1 {
		t.Errorf("basis diagonal = %v,%v,%v,%v, want 1,1,-1,1",
			u.View[0], u.View[5], u.View[10], u.View[15])
	}
	if u.View[12] != 0 || u.View[13] != 0 || u.View[14] != 0 {
		t.Errorf("translation = %v,%v,%v, want zero",
			u.View[12], u.View[13], u.View[14])
	}

	cam = camera.New(math.Vec3{X: 1, Y: 2, Z: 3})
	u = BuildFrameUniforms(cam, cfg)
	if u.View[12] != -1 || u.View[13] != -2 || u.View[14] != 3 {
		t.Errorf("translation = %v,%v,%v, want -1,-2,3",
			u.View[12], u.View[13], u.View[14])
	}

	if u.Ambient != float32(cfg.Ambient) {
		t.Errorf("ambient = %v, want %v", u.Ambient, cfg.Ambient)
	}
	if u.FogColor != cfg.FogColor {
		t.Errorf("fog color = %v, want %v", u.FogColor, cfg.FogColor)
	}
}
