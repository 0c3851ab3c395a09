// Package model provides static polyhedral models for the spinning
// viewer: vertex templates plus a quaternion orientation that rebuilds
// the transformed vertices each frame.
package model

import (
	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// renormEvery bounds quaternion drift: composing thousands of tiny
// rotations slowly denormalizes the orientation, which would scale
// the model, so it is renormalized on a fixed cadence instead of
// paying a square root every frame.
const renormEvery = 60

// Model is a rigid polyhedron. Rotation composes onto a persistent
// orientation quaternion and the current vertices are rebuilt from
// the untouched originals, so error never accumulates in the
// geometry itself.
type Model struct {
	original []math.Vec3
	verts    []math.Vec3
	faces    [][]int

	orientation math.Quat
	frames      int
	radius      float64
}

// New builds a model from vertex positions and per-face index tuples
// of 3 or 4 vertices in outward winding.
func New(vertices []math.Vec3, faces [][]int) *Model {
	m := &Model{
		original:    make([]math.Vec3, len(vertices)),
		verts:       make([]math.Vec3, len(vertices)),
		faces:       faces,
		orientation: math.QuatIdentity(),
	}
	copy(m.original, vertices)
	copy(m.verts, vertices)
	for _, v := range vertices {
		if l := v.Length(); l > m.radius {
			m.radius = l
		}
	}
	return m
}

// Rotate composes incremental rotations around the Y, X and Z axes,
// in that order, onto the model orientation and rebuilds the
// transformed vertices.
func (m *Model) Rotate(ax, ay, az float64) {
	if ay != 0 {
		qy := math.QuatFromAxisAngle(math.Vec3{Y: 1}, ay)
		m.orientation = qy.Mul(m.orientation)
	}
	if ax != 0 {
		qx := math.QuatFromAxisAngle(math.Vec3{X: 1}, ax)
		m.orientation = qx.Mul(m.orientation)
	}
	if az != 0 {
		qz := math.QuatFromAxisAngle(math.Vec3{Z: 1}, az)
		m.orientation = qz.Mul(m.orientation)
	}

	m.frames++
	if m.frames%renormEvery == 0 {
		m.orientation = m.orientation.Normalize()
	}

	for i, o := range m.original {
		m.verts[i] = m.orientation.RotateVector(o)
	}
}

// Faces assembles the current face list. Centers and normals are
// recomputed from the rotated vertices, so they are always exact.
func (m *Model) Faces() []render.Face {
	out := make([]render.Face, len(m.faces))
	for i, idx := range m.faces {
		vs := make([]math.Vec3, len(idx))
		for j, vi := range idx {
			vs[j] = m.verts[vi]
		}
		out[i] = render.MakeFace(vs...)
	}
	return out
}

// BoundingRadius returns the maximum vertex distance from the origin.
// Rotation preserves it, so it is computed once from the originals.
func (m *Model) BoundingRadius() float64 {
	return m.radius
}
