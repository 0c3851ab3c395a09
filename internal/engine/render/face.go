// Package render implements the software rasterizer: world-to-camera
// transform, near-plane clipping, perspective and orthographic
// projection, z-buffered scanline fill, point-light shading, and fog.
package render

import "github.com/g0blinResearch/asciirender/pkg/math"

// WireStyle selects how a face is drawn.
type WireStyle uint8

const (
	// WireNone faces are filled and shaded; their outline is drawn
	// only when the renderer config enables edges.
	WireNone WireStyle = iota
	// WireTerrain faces are wireframe-only terrain grid quads and
	// fade with altitude-adjusted fog.
	WireTerrain
	// WirePath faces are wireframe-only path markers drawn in the
	// configured path style regardless of fog.
	WirePath
)

// Face is an immutable convex polygon of 3 or 4 vertices in outward
// winding, with precomputed centroid and unit normal.
type Face struct {
	Verts  []math.Vec3
	Center math.Vec3
	Normal math.Vec3
	Wire   WireStyle
}

// MakeFace builds a filled face. The normal is lastEdge × firstEdge
// from the first vertex, which points outward for outward winding.
func MakeFace(verts ...math.Vec3) Face {
	return newFace(verts, WireNone)
}

// MakeWireFace builds a wireframe-only face in the given style.
func MakeWireFace(style WireStyle, verts ...math.Vec3) Face {
	return newFace(verts, style)
}

func newFace(verts []math.Vec3, wire WireStyle) Face {
	var c math.Vec3
	for _, v := range verts {
		c = c.Add(v)
	}
	c = c.Scale(1 / float64(len(verts)))

	e1 := verts[1].Sub(verts[0])
	e2 := verts[len(verts)-1].Sub(verts[0])
	return Face{
		Verts:  verts,
		Center: c,
		Normal: e2.Cross(e1).Normalize(),
		Wire:   wire,
	}
}

// Renderable yields the current face list of any drawable source.
// Static models and the streaming world both satisfy it, so the
// renderer never knows which kind it is drawing.
type Renderable interface {
	Faces() []Face

	// BoundingRadius is the maximum vertex distance from the model
	// origin, used by the orthographic path to auto-fit the viewport.
	BoundingRadius() float64
}
