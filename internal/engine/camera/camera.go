// Package camera provides the first-person camera used by the renderer.
package camera

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/pkg/math"
)

// pitchLimit keeps the camera from flipping over at the poles.
const pitchLimit = 1.3

// Camera is a first-person camera with yaw/pitch orientation.
// Yaw 0, pitch 0 looks toward -Z. Camera space is +X right, +Y up,
// depth measured along Forward (positive = in front of the camera).
type Camera struct {
	Position math.Vec3
	Yaw      float64 // radians around world Y, 0 = facing -Z
	Pitch    float64 // radians, positive = looking up

	// Orthonormal basis, recomputed on every Turn.
	Forward math.Vec3
	Right   math.Vec3
	Up      math.Vec3
}

// New creates a camera at position looking toward -Z.
func New(position math.Vec3) *Camera {
	c := &Camera{Position: position}
	c.updateBasis()
	return c
}

func (c *Camera) updateBasis() {
	cy, sy := gomath.Cos(c.Yaw), gomath.Sin(c.Yaw)
	cp, sp := gomath.Cos(c.Pitch), gomath.Sin(c.Pitch)
	c.Forward = math.Vec3{X: sy * cp, Y: sp, Z: -cy * cp}
	c.Right = math.Vec3{X: cy, Y: 0, Z: sy}
	c.Up = math.Vec3{X: -sy * sp, Y: cp, Z: cy * sp}
}

// Turn adds dyaw and dpitch to the orientation. Yaw is unbounded,
// pitch clamps to ±pitchLimit.
func (c *Camera) Turn(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateBasis()
}

// MoveForward translates along the horizontal forward direction.
// Pitch is ignored so looking up or down never changes ground speed.
func (c *Camera) MoveForward(dist float64) {
	cy, sy := gomath.Cos(c.Yaw), gomath.Sin(c.Yaw)
	c.Position.X += sy * dist
	c.Position.Z -= cy * dist
}

// MoveRight strafes along the horizontal right direction.
func (c *Camera) MoveRight(dist float64) {
	c.Position.X += c.Right.X * dist
	c.Position.Z += c.Right.Z * dist
}

// MoveUp translates straight up along world Y.
func (c *Camera) MoveUp(dist float64) {
	c.Position.Y += dist
}

// ViewTransform maps a world-space point into camera space.
func (c *Camera) ViewTransform(v math.Vec3) math.Vec3 {
	d := v.Sub(c.Position)
	return math.Vec3{
		X: c.Right.Dot(d),
		Y: c.Up.Dot(d),
		Z: c.Forward.Dot(d),
	}
}

// TransformDirection rotates a world-space direction into camera
// space without translation.
func (c *Camera) TransformDirection(n math.Vec3) math.Vec3 {
	return math.Vec3{
		X: c.Right.Dot(n),
		Y: c.Up.Dot(n),
		Z: c.Forward.Dot(n),
	}
}
