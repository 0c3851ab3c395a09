package render

import (
	"testing"

	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// faceList is a fixed Renderable for renderer tests.
type faceList struct {
	faces  []Face
	radius float64
}

func (l faceList) Faces() []Face          { return l.faces }
func (l faceList) BoundingRadius() float64 { return l.radius }

// testConfig is a 40x20 viewport with a 90 degree field of view, so
// the focal length is exactly 20 and projected coordinates come out
// as round numbers.
func testConfig() Config {
	cfg := DefaultConfig(40, 20)
	cfg.FogDistance = 0
	cfg.DrawEdges = false
	return cfg
}

func TestDepthBufferOrderIndependent(t *testing.T) {
	// Both triangles project to the same screen cells; only the depth
	// buffer decides which one shows.
	nearTri := MakeFace(
		math.Vec3{X: -2, Y: -2, Z: -5},
		math.Vec3{X: 2, Y: -2, Z: -5},
		math.Vec3{X: 0, Y: 2, Z: -5},
	)
	farTri := MakeFace(
		math.Vec3{X: -4, Y: -4, Z: -10},
		math.Vec3{X: 4, Y: -4, Z: -10},
		math.Vec3{X: 0, Y: 4, Z: -10},
	)

	cfg := testConfig()
	cfg.LightPos = math.Vec3{X: 0, Y: 0, Z: -7}

	for name, faces := range map[string][]Face{
		"near first": {nearTri, farTri},
		"far first":  {farTri, nearTri},
	} {
		r, err := New(cfg)
		if err != nil {
			t.Fatalf("%s: New: %v", name, err)
		}
		cam := camera.New(math.Vec3{})
		f := r.RenderPerspective(faceList{faces: faces}, cam)

		// Light sits two units in front of the near face, full diffuse:
		// 0.12 + 0.88/1.08 = 0.9348, shade 6 of 7.
		if got := f.At(20, 10).Ch; got != '%' {
			t.Errorf("%s: center cell = %q, want %q", name, got, '%')
		}
		if got := f.DepthAt(20, 10); got != -5.0 {
			t.Errorf("%s: center depth = %v, want -5", name, got)
		}
	}
}

func TestFogDimsAndThenHidesFaces(t *testing.T) {
	cfg := testConfig()
	cfg.FogDistance = 24
	cfg.LightPos = math.Vec3{X: 0, Y: 0, Z: -12}

	r, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(math.Vec3{})

	// Halfway to the fog horizon: brightness 1.0 scaled by
	// 1 - 0.5^2 = 0.75, shade 5.
	half := MakeFace(
		math.Vec3{X: -4, Y: -4, Z: -12},
		math.Vec3{X: 4, Y: -4, Z: -12},
		math.Vec3{X: 0, Y: 4, Z: -12},
	)
	f := r.RenderPerspective(faceList{faces: []Face{half}}, cam)
	if got := f.At(20, 10).Ch; got != '*' {
		t.Errorf("half-fogged cell = %q, want %q", got, '*')
	}

	// At the horizon the cell stays blank but still claims the depth
	// buffer, so nothing behind it bleeds through.
	atHorizon := MakeFace(
		math.Vec3{X: -8, Y: -8, Z: -24},
		math.Vec3{X: 8, Y: -8, Z: -24},
		math.Vec3{X: 0, Y: 8, Z: -24},
	)
	f = r.RenderPerspective(faceList{faces: []Face{atHorizon}}, cam)
	if got := f.At(20, 10).Ch; got != ' ' {
		t.Errorf("fully fogged cell = %q, want blank", got)
	}
	if got := f.DepthAt(20, 10); got != -24.0 {
		t.Errorf("fully fogged depth = %v, want -24", got)
	}
}

func TestProjectionClampsNearPlaneBlowup(t *testing.T) {
	r, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	// A vertex on the near plane projects kilometers off screen; the
	// clamp keeps Bresenham from walking that far.
	x, _ := r.projectPerspective(math.Vec3{X: 10, Y: 0, Z: 0.01})
	if x != 400 {
		t.Errorf("projected x = %d, want 400", x)
	}
	x, _ = r.projectPerspective(math.Vec3{X: -10, Y: 0, Z: 0.01})
	if x != -400 {
		t.Errorf("projected x = %d, want -400", x)
	}
}

func TestFaceStraddlingCameraStillFills(t *testing.T) {
	// A floor quad running from behind the camera to in front of it.
	// Without clipping the whole face would be dropped.
	floor := MakeFace(
		math.Vec3{X: -2, Y: -1, Z: 2},
		math.Vec3{X: 2, Y: -1, Z: 2},
		math.Vec3{X: 2, Y: -1, Z: -6},
		math.Vec3{X: -2, Y: -1, Z: -6},
	)

	r, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(math.Vec3{})
	f := r.RenderPerspective(faceList{faces: []Face{floor}}, cam)

	// The floor faces away from the light, so only ambient shading
	// reaches it; with fog disabled even shade 0 cells are written.
	if got := f.At(20, 15).Ch; got != '.' {
		t.Errorf("floor cell = %q, want %q", got, '.')
	}
	if got := f.At(20, 4).Ch; got != ' ' {
		t.Errorf("sky cell = %q, want blank", got)
	}
}

func TestWireframeFacesAreNotFilled(t *testing.T) {
	quad := MakeWireFace(WireTerrain,
		math.Vec3{X: -2, Y: -2, Z: -5},
		math.Vec3{X: 2, Y: -2, Z: -5},
		math.Vec3{X: 2, Y: 2, Z: -5},
		math.Vec3{X: -2, Y: 2, Z: -5},
	)

	r, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(math.Vec3{})
	f := r.RenderPerspective(faceList{faces: []Face{quad}}, cam)

	if got := f.At(20, 10).Ch; got != ' ' {
		t.Errorf("wireframe interior = %q, want blank", got)
	}
	edge := f.At(20, 14) // bottom edge row
	if edge.Ch != '.' {
		t.Errorf("wireframe edge = %q, want %q", edge.Ch, '.')
	}
	if !edge.Colored {
		t.Error("wireframe edge cell not colored")
	}
}

func TestPathMarkersKeepFullColorThroughFog(t *testing.T) {
	cfg := testConfig()
	cfg.FogDistance = 10
	r, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(math.Vec3{})

	// An 80% fogged terrain edge dims; a path edge at the same depth
	// keeps the configured color.
	z := -8.0
	terrain := MakeWireFace(WireTerrain,
		math.Vec3{X: -2, Y: -2, Z: z},
		math.Vec3{X: 2, Y: -2, Z: z},
		math.Vec3{X: 2, Y: 2, Z: z},
		math.Vec3{X: -2, Y: 2, Z: z},
	)
	path := MakeWireFace(WirePath,
		math.Vec3{X: -2, Y: -2, Z: z},
		math.Vec3{X: 2, Y: -2, Z: z},
		math.Vec3{X: 2, Y: 2, Z: z},
		math.Vec3{X: -2, Y: 2, Z: z},
	)

	f := r.RenderPerspective(faceList{faces: []Face{terrain}}, cam)
	cell := f.At(20, 13)
	if cell.Ch != '.' {
		t.Fatalf("terrain edge = %q, want %q", cell.Ch, '.')
	}
	// fade = 1 - 0.8^2 = 0.36, quantized to 7/20: green 90 * 0.35 = 31.
	if cell.G >= cfg.TerrainStyle.G {
		t.Errorf("terrain edge green = %d, want dimmer than %d", cell.G, cfg.TerrainStyle.G)
	}

	f = r.RenderPerspective(faceList{faces: []Face{path}}, cam)
	cell = f.At(20, 13)
	if cell.Ch != cfg.PathStyle.Ch {
		t.Fatalf("path edge = %q, want %q", cell.Ch, cfg.PathStyle.Ch)
	}
	if cell.R != cfg.PathStyle.R || cell.G != cfg.PathStyle.G || cell.B != cfg.PathStyle.B {
		t.Errorf("path edge color = %d,%d,%d, want %d,%d,%d undimmed",
			cell.R, cell.G, cell.B, cfg.PathStyle.R, cfg.PathStyle.G, cfg.PathStyle.B)
	}
}

func TestBehindCameraFaceSkipped(t *testing.T) {
	behind := MakeFace(
		math.Vec3{X: -2, Y: -2, Z: 5},
		math.Vec3{X: 2, Y: -2, Z: 5},
		math.Vec3{X: 0, Y: 2, Z: 5},
	)
	r, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	cam := camera.New(math.Vec3{})
	f := r.RenderPerspective(faceList{faces: []Face{behind}}, cam)

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			if f.At(x, y).Ch != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want blank frame", x, y, f.At(x, y).Ch)
			}
		}
	}
}
