package world

import (
	gomath "math"
	"testing"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

func TestFirstUpdateFillsAllTiers(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	removed := w.Update(math.Vec3{X: 6, Y: 1.5, Z: 6}, math.Vec3{Z: -1})
	if len(removed) != 0 {
		t.Errorf("first update removed %d chunks, want 0", len(removed))
	}

	full, terrainOnly := 0, 0
	for _, c := range w.chunks {
		if c.TerrainOnly {
			terrainOnly++
		} else {
			full++
		}
	}
	if full != 25 {
		t.Errorf("full-detail chunks = %d, want 25", full)
	}
	// Render distance 2 puts the terrain ring at radius 8: a 17x17
	// square minus the 25 full-detail cells, plus whatever mountain
	// chunks the outer scan found.
	wantRing := 17*17 - 25
	if terrainOnly != wantRing+w.mtnNeeded {
		t.Errorf("terrain-only chunks = %d, want %d ring + %d mountain",
			terrainOnly, wantRing, w.mtnNeeded)
	}

	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			c, ok := w.chunks[ChunkKey{CX: dx, CZ: dz}]
			if !ok {
				t.Fatalf("chunk (%d, %d) missing after first update", dx, dz)
			}
			if c.TerrainOnly {
				t.Fatalf("chunk (%d, %d) loaded terrain-only inside the full-detail radius", dx, dz)
			}
		}
	}
}

func TestWarmUpdateRespectsBudgets(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	fwd := math.Vec3{Z: -1}
	w.Update(math.Vec3{X: 6, Y: 1.5, Z: 6}, fwd)

	before := len(w.chunks)
	removed := w.Update(math.Vec3{X: 18, Y: 1.5, Z: 6}, fwd)
	loaded := len(w.chunks) - (before - len(removed))

	maxLoad := 2 + terrainLoadBudget + mountainLoadBudget
	if loaded > maxLoad {
		t.Errorf("warm update loaded %d chunks, want at most %d", loaded, maxLoad)
	}
	if len(removed) == 0 {
		t.Error("moving one chunk east should evict the trailing edge")
	}
	for _, k := range removed {
		if _, ok := w.chunks[k]; ok {
			t.Errorf("chunk %v reported removed but still resident", k)
		}
	}
}

func TestEvictedChunkRegeneratesIdentically(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	spawnPos := math.Vec3{X: 6, Y: 1.5, Z: 6}
	fwd := math.Vec3{Z: -1}
	w.Update(spawnPos, fwd)

	key := ChunkKey{CX: 0, CZ: 0}
	orig := w.chunks[key].Faces

	w.Update(math.Vec3{X: 600, Y: 1.5, Z: 6}, fwd)
	if _, ok := w.chunks[key]; ok {
		t.Fatal("spawn chunk still resident after moving 600 units away")
	}

	// Warm updates stream the spawn area back in a few chunks at a time.
	for i := 0; i < 64; i++ {
		w.Update(spawnPos, fwd)
		if _, ok := w.chunks[key]; ok {
			break
		}
	}
	c, ok := w.chunks[key]
	if !ok {
		t.Fatal("spawn chunk never reloaded")
	}
	if len(c.Faces) != len(orig) {
		t.Fatalf("regenerated face count %d, want %d", len(c.Faces), len(orig))
	}
	for i := range orig {
		if len(c.Faces[i].Verts) != len(orig[i].Verts) {
			t.Fatalf("face %d shape changed after reload", i)
		}
		for j := range orig[i].Verts {
			if c.Faces[i].Verts[j] != orig[i].Verts[j] {
				t.Fatalf("face %d vertex %d changed after reload", i, j)
			}
		}
	}
}

func TestFacesCullsChunksBehindCamera(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	w.Update(math.Vec3{X: 6, Y: 1.5, Z: 6}, math.Vec3{Z: -1})

	total := len(w.pathFaces) + len(w.oakFaces)
	for _, c := range w.chunks {
		total += len(c.Faces)
	}

	visible := len(w.Faces())
	if visible == 0 {
		t.Fatal("no faces visible at spawn")
	}
	if visible >= total {
		t.Errorf("forward view kept all %d faces; chunks behind the camera should be culled", total)
	}
	if w.LastFaceCount() != visible {
		t.Errorf("LastFaceCount = %d, want %d", w.LastFaceCount(), visible)
	}
}

func TestLandmarkOakDeterministic(t *testing.T) {
	a := NewWorld(42, 12.0, 2)
	b := NewWorld(42, 12.0, 2)
	if a.oakPos != b.oakPos {
		t.Errorf("oak position differs across worlds with the same seed: %v vs %v", a.oakPos, b.oakPos)
	}
	// Thicker trunk plus the two-part canopy: 4 quads + 8 triangles.
	if len(a.oakFaces) != 12 {
		t.Errorf("oak has %d faces, want 12", len(a.oakFaces))
	}

	dx := a.oakPos.X - spawnX
	dz := a.oakPos.Z - spawnZ
	d := gomath.Sqrt(dx*dx + dz*dz)
	if d < 5.0 || d > 8.0 {
		t.Errorf("oak spawned %v units from spawn, want within [5, 8]", d)
	}
}

func TestPathMarkersRunFromSpawnToOak(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	if len(w.pathFaces) < 2 {
		t.Fatalf("path has %d markers, want at least 2", len(w.pathFaces))
	}
	for i, f := range w.pathFaces {
		if f.Wire != render.WirePath {
			t.Errorf("marker %d wire style = %d, want path style", i, f.Wire)
		}
		if len(f.Verts) != 4 {
			t.Errorf("marker %d has %d vertices, want a diamond quad", i, len(f.Verts))
		}
	}

	first := w.pathFaces[0].Center
	if gomath.Abs(first.X-spawnX) > 1e-9 || gomath.Abs(first.Z-spawnZ) > 1e-9 {
		t.Errorf("first marker centred at (%v, %v), want spawn (%v, %v)",
			first.X, first.Z, spawnX, spawnZ)
	}
}

func TestSetRenderDistanceClamps(t *testing.T) {
	w := NewWorld(42, 12.0, 2)
	w.SetRenderDistance(0)
	if w.RenderDistance() != 1 {
		t.Errorf("render distance = %d, want clamp to 1", w.RenderDistance())
	}
	w.SetRenderDistance(6)
	if w.RenderDistance() != 6 {
		t.Errorf("render distance = %d, want 6", w.RenderDistance())
	}
}
