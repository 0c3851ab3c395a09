package world

import (
	"testing"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
)

func TestChunkRegenerationIdentical(t *testing.T) {
	a := generateChunk(3, -2, 12.0, 42, false)
	b := generateChunk(3, -2, 12.0, 42, false)
	if len(a.Faces) != len(b.Faces) {
		t.Fatalf("face counts differ: %d vs %d", len(a.Faces), len(b.Faces))
	}
	for i := range a.Faces {
		fa, fb := a.Faces[i], b.Faces[i]
		if len(fa.Verts) != len(fb.Verts) {
			t.Fatalf("face %d vertex counts differ", i)
		}
		for j := range fa.Verts {
			if fa.Verts[j] != fb.Verts[j] {
				t.Fatalf("face %d vertex %d differs: %v vs %v", i, j, fa.Verts[j], fb.Verts[j])
			}
		}
		if fa.Normal != fb.Normal || fa.Center != fb.Center {
			t.Fatalf("face %d derived data differs", i)
		}
	}
}

func TestChunkSeedMixesCoordinates(t *testing.T) {
	base := chunkSeed(42, 0, 0)
	if chunkSeed(42, 1, 0) == base {
		t.Error("chunkSeed ignored the x coordinate")
	}
	if chunkSeed(42, 0, 1) == base {
		t.Error("chunkSeed ignored the z coordinate")
	}
	if chunkSeed(7, 0, 0) == base {
		t.Error("chunkSeed ignored the world seed")
	}
}

func TestTerrainOnlyChunkIsCoarse(t *testing.T) {
	c := generateChunk(0, 0, 12.0, 42, true)
	want := terrainGridRes * terrainGridRes
	if len(c.Faces) != want {
		t.Fatalf("terrain-only chunk has %d faces, want %d", len(c.Faces), want)
	}
	for i, f := range c.Faces {
		if f.Wire != render.WireTerrain {
			t.Errorf("face %d wire style = %d, want terrain wireframe", i, f.Wire)
		}
	}
}

func TestFullChunkEndsWithTerrainGrid(t *testing.T) {
	c := generateChunk(0, 0, 12.0, 42, false)
	n := fullGridRes * fullGridRes
	if len(c.Faces) < n {
		t.Fatalf("full chunk has %d faces, want at least the %d-quad terrain grid", len(c.Faces), n)
	}
	for i, f := range c.Faces[len(c.Faces)-n:] {
		if f.Wire != render.WireTerrain {
			t.Errorf("terrain grid face %d has wire style %d", i, f.Wire)
		}
	}
	for i, f := range c.Faces[:len(c.Faces)-n] {
		if f.Wire != render.WireNone {
			t.Errorf("object face %d has wire style %d, want filled", i, f.Wire)
		}
	}
}

func TestTerrainGridSamplesHeightField(t *testing.T) {
	faces := makeTerrainGrid(2, -1, 12.0, 7, 3)
	for _, f := range faces {
		for _, v := range f.Verts {
			want := TerrainHeight(v.X, v.Z, 7)
			if v.Y != want {
				t.Fatalf("grid vertex at (%v, %v) has height %v, want %v", v.X, v.Z, v.Y, want)
			}
		}
	}
}

func BenchmarkGenerateChunk(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := generateChunk(i%64, (i/64)%64, 12.0, 42, false)
		benchFaces = len(c.Faces)
	}
}

var benchFaces int
