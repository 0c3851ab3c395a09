// Package lighting provides the point light model shared by the
// character and GPU render paths.
package lighting

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/pkg/math"
)

// Inverse-square falloff coefficient: brightness halves around seven
// units out.
const attenuationFactor = 0.02

// PointLight is the single dynamic light: Lambertian diffuse with
// inverse-square attenuation on top of a constant ambient floor.
// Position must be in the same coordinate space as the points it
// shades.
type PointLight struct {
	Position math.Vec3
	Ambient  float64
}

// Shade returns the brightness in [0, 1] at a surface point with the
// given unit normal. A point coincident with the light is fully lit.
func (l PointLight) Shade(point, normal math.Vec3) float64 {
	dx := l.Position.X - point.X
	dy := l.Position.Y - point.Y
	dz := l.Position.Z - point.Z
	dist := gomath.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist == 0 {
		return 1.0
	}
	invD := 1.0 / dist
	diffuse := normal.X*dx*invD + normal.Y*dy*invD + normal.Z*dz*invD
	if diffuse < 0 {
		diffuse = 0
	}
	atten := 1.0 / (1.0 + attenuationFactor*dist*dist)
	return l.Ambient + (1.0-l.Ambient)*diffuse*atten
}

// GPU returns the light as float32 uniform values.
func (l PointLight) GPU() (position [3]float32, ambient float32) {
	position = [3]float32{
		float32(l.Position.X),
		float32(l.Position.Y),
		float32(l.Position.Z),
	}
	return position, float32(l.Ambient)
}
