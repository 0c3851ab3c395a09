package render

import (
	"fmt"
	gomath "math"

	"github.com/g0blinResearch/asciirender/pkg/math"
)

// EdgeStyle is the character and color drawn for one class of edge.
type EdgeStyle struct {
	Ch      byte
	R, G, B uint8
}

// Config carries every tunable of the renderer. Zero values are not
// usable; start from DefaultConfig.
type Config struct {
	Width  int
	Height int

	// FOVDegrees is the horizontal field of view for perspective
	// projection. Near is the clip plane distance in front of the
	// camera.
	FOVDegrees float64
	Near       float64

	// CharAspect compensates for terminal cells being roughly twice
	// as tall as they are wide.
	CharAspect float64

	// FogDistance is where quadratic fog reaches full strength; zero
	// disables fog entirely.
	FogDistance float64
	FogColor    [3]float32

	// FillColor is the base surface color on the GPU path, where the
	// character ramp does not apply.
	FillColor [3]float32

	LightPos math.Vec3
	Ambient  float64

	// ShadeRamp maps brightness onto characters, darkest first.
	ShadeRamp string

	// DrawEdges outlines filled faces; wireframe-styled faces always
	// draw their edges.
	DrawEdges bool

	EdgeStyle    EdgeStyle // outlines of filled faces
	TerrainStyle EdgeStyle // terrain wireframe
	PathStyle    EdgeStyle // path markers, never fog-faded
}

// DefaultConfig returns the standard forest look for a viewport.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		FOVDegrees:   90,
		Near:         0.01,
		CharAspect:   2.0,
		FogColor:     [3]float32{0.04, 0.05, 0.07},
		FillColor:    [3]float32{0.85, 0.85, 0.88},
		LightPos:     math.Vec3{X: 3, Y: 4, Z: 3},
		Ambient:      0.12,
		ShadeRamp:    ".:-=+*%@",
		DrawEdges:    true,
		EdgeStyle:    EdgeStyle{Ch: '#', R: 159, G: 239, B: 0},
		TerrainStyle: EdgeStyle{Ch: '.', R: 60, G: 90, B: 45},
		PathStyle:    EdgeStyle{Ch: '#', R: 255, G: 255, B: 0},
	}
}

// Renderer rasterizes faces into a character frame. It keeps one
// frame and reuses it, so a returned *Frame is only valid until the
// next render call.
type Renderer struct {
	cfg   Config
	focal float64
	scale float64 // orthographic auto-fit, set by FitTo
	frame *Frame
}

// New validates the configuration and builds a renderer. Degenerate
// viewport, field of view, near plane, aspect or ramp values are
// configuration errors; nothing later in the pipeline rechecks them.
func New(cfg Config) (*Renderer, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf("render: viewport %dx%d is not drawable", cfg.Width, cfg.Height)
	}
	if cfg.FOVDegrees <= 0 || cfg.FOVDegrees >= 180 {
		return nil, fmt.Errorf("render: field of view %.1f degrees outside (0, 180)", cfg.FOVDegrees)
	}
	if cfg.Near <= 0 {
		return nil, fmt.Errorf("render: near plane %g must be positive", cfg.Near)
	}
	if cfg.CharAspect <= 0 {
		return nil, fmt.Errorf("render: character aspect %g must be positive", cfg.CharAspect)
	}
	if len(cfg.ShadeRamp) < 2 {
		return nil, fmt.Errorf("render: shade ramp %q needs at least two levels", cfg.ShadeRamp)
	}
	if cfg.FogDistance < 0 {
		return nil, fmt.Errorf("render: fog distance %g must not be negative", cfg.FogDistance)
	}
	r := &Renderer{
		cfg:   cfg,
		scale: 1.0,
		frame: NewFrame(cfg.Width, cfg.Height),
	}
	r.setFocal(cfg.FOVDegrees)
	return r, nil
}

func (r *Renderer) setFocal(fovDegrees float64) {
	halfRad := fovDegrees * 0.5 * gomath.Pi / 180.0
	r.focal = float64(r.cfg.Width) * 0.5 / gomath.Tan(halfRad)
}

// SetFOV changes the horizontal field of view for perspective mode.
func (r *Renderer) SetFOV(degrees float64) {
	r.cfg.FOVDegrees = degrees
	r.setFocal(degrees)
}

// SetFogDistance moves the fog horizon; zero or less disables fog.
func (r *Renderer) SetFogDistance(d float64) {
	if d < 0 {
		d = 0
	}
	r.cfg.FogDistance = d
}

// SetLightPos moves the point light, in world coordinates.
func (r *Renderer) SetLightPos(p math.Vec3) {
	r.cfg.LightPos = p
}

// FogDistance returns the current fog horizon.
func (r *Renderer) FogDistance() float64 { return r.cfg.FogDistance }

// FitTo scales the orthographic projection so the renderable's
// bounding sphere fills the viewport with a one-cell margin.
func (r *Renderer) FitTo(m Renderable) {
	radius := m.BoundingRadius()
	if radius <= 0 {
		r.scale = 1.0
		return
	}
	sx := float64(r.cfg.Width/2-1) / radius
	sy := float64(r.cfg.Height/2-1) * r.cfg.CharAspect / radius
	r.scale = gomath.Min(sx, sy)
}
