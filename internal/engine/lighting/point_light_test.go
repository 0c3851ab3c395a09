package lighting

import (
	gomath "math"
	"testing"

	"github.com/g0blinResearch/asciirender/pkg/math"
)

func TestShadeFacingLight(t *testing.T) {
	l := PointLight{Position: math.Vec3{Y: 2}, Ambient: 0.12}
	got := l.Shade(math.Vec3{}, math.Vec3{Y: 1})
	atten := 1.0 / (1.0 + 0.02*4)
	want := 0.12 + 0.88*atten
	if gomath.Abs(got-want) > 1e-12 {
		t.Errorf("Shade = %v, want %v", got, want)
	}
}

func TestShadeBackfaceGetsAmbientOnly(t *testing.T) {
	l := PointLight{Position: math.Vec3{Y: 2}, Ambient: 0.12}
	if got := l.Shade(math.Vec3{}, math.Vec3{Y: -1}); got != 0.12 {
		t.Errorf("backfacing surface brightness = %v, want ambient only", got)
	}
}

func TestShadeAtLightIsFull(t *testing.T) {
	l := PointLight{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Ambient: 0.12}
	if got := l.Shade(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{Y: 1}); got != 1.0 {
		t.Errorf("point at the light shades %v, want 1.0", got)
	}
}

func TestShadeFallsWithDistance(t *testing.T) {
	l := PointLight{Position: math.Vec3{Y: 1}, Ambient: 0.12}
	near := l.Shade(math.Vec3{}, math.Vec3{Y: 1})
	far := l.Shade(math.Vec3{X: 10}, math.Vec3{Y: 1})
	if far >= near {
		t.Errorf("brightness %v at 10 units should fall below %v up close", far, near)
	}
}
