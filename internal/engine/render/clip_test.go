package render

import (
	"testing"

	"github.com/g0blinResearch/asciirender/pkg/math"
)

func TestClipSquareStraddlingNearPlane(t *testing.T) {
	near := 0.01
	verts := []math.Vec3{
		{X: -1, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: 3},
		{X: -1, Y: 0, Z: 3},
	}

	got := clipNearPlane(verts, near)
	if len(got) != 4 {
		t.Fatalf("clipped vertex count = %d, want 4", len(got))
	}

	want := []math.Vec3{
		{X: 1, Y: 0, Z: near},
		{X: 1, Y: 0, Z: 3},
		{X: -1, Y: 0, Z: 3},
		{X: -1, Y: 0, Z: near},
	}
	for i, v := range got {
		if v != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, v, want[i])
		}
	}

	// Boundary vertices must sit exactly on the plane, not merely near
	// it, or projection divides by a tiny signed z of either sign.
	for i, v := range got {
		if v.Z < near {
			t.Errorf("vertex %d has z = %v in front of the near plane", i, v.Z)
		}
	}
}

func TestClipPolygonFullyBehind(t *testing.T) {
	verts := []math.Vec3{
		{X: -1, Y: 0, Z: -5},
		{X: 1, Y: 0, Z: -5},
		{X: 0, Y: 1, Z: -2},
	}
	if got := clipNearPlane(verts, 0.01); len(got) != 0 {
		t.Errorf("fully behind polygon clipped to %d vertices, want 0", len(got))
	}
}

func TestClipPolygonFullyInFront(t *testing.T) {
	verts := []math.Vec3{
		{X: -1, Y: 0, Z: 2},
		{X: 1, Y: 0, Z: 2},
		{X: 0, Y: 1, Z: 4},
	}
	got := clipNearPlane(verts, 0.01)
	if len(got) != len(verts) {
		t.Fatalf("clipped vertex count = %d, want %d", len(got), len(verts))
	}
	for i, v := range got {
		if v != verts[i] {
			t.Errorf("vertex %d = %+v, want %+v unchanged", i, v, verts[i])
		}
	}
}

func TestClipTriangleTipInFront(t *testing.T) {
	verts := []math.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: -1, Y: 0, Z: -1},
		{X: 1, Y: 0, Z: -1},
	}
	got := clipNearPlane(verts, 0.01)
	if len(got) != 3 {
		t.Fatalf("clipped vertex count = %d, want 3", len(got))
	}
	if got[0] != verts[0] {
		t.Errorf("tip vertex = %+v, want %+v", got[0], verts[0])
	}
	for i := 1; i < 3; i++ {
		if got[i].Z != 0.01 {
			t.Errorf("vertex %d z = %v, want exactly 0.01", i, got[i].Z)
		}
	}
}
