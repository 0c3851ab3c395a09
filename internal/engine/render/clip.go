package render

import "github.com/g0blinResearch/asciirender/pkg/math"

// clipNearPlane clips a camera-space polygon against z = near with
// the Sutherland-Hodgman edge walk. Edges crossing the plane gain an
// interpolated vertex sitting exactly on it, so a face straddling the
// camera keeps its visible part instead of vanishing. A polygon
// entirely behind the plane comes back empty.
func clipNearPlane(verts []math.Vec3, near float64) []math.Vec3 {
	n := len(verts)
	out := make([]math.Vec3, 0, n+2)
	for i := 0; i < n; i++ {
		cur := verts[i]
		next := verts[(i+1)%n]
		curIn := cur.Z > near
		nextIn := next.Z > near
		switch {
		case curIn && nextIn:
			out = append(out, cur)
		case curIn:
			out = append(out, cur, intersectNear(cur, next, near))
		case nextIn:
			out = append(out, intersectNear(cur, next, near))
		}
	}
	return out
}

func intersectNear(a, b math.Vec3, near float64) math.Vec3 {
	t := (near - a.Z) / (b.Z - a.Z)
	return math.Vec3{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
		Z: near,
	}
}
