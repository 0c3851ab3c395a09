package world

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
)

// Object placement odds per cell, selected cumulatively: tree 30%,
// rock 20%, bush 25%, the rest empty.
const (
	treeWeight = 0.30
	rockWeight = 0.20
	bushWeight = 0.25
)

const (
	cellGrid = 4 // 4x4 object cells per chunk

	fullGridRes    = 6 // terrain quads per axis at full detail
	terrainGridRes = 3 // coarse grid for distant terrain-only chunks
)

// ChunkKey identifies a chunk by its signed grid coordinates.
type ChunkKey struct {
	CX, CZ int
}

// Chunk holds the generated geometry for one square region of the
// world. TerrainOnly chunks carry just a coarse ground grid; full
// chunks add placed objects and a finer grid.
type Chunk struct {
	Key         ChunkKey
	TerrainOnly bool
	Faces       []render.Face
}

// chunkSeed mixes the world seed and chunk coordinates into a 32-bit
// RNG state. Same multiply/xor mixing as terrainHash, keeping all 32
// bits instead of masking down to 16.
func chunkSeed(seed uint32, cx, cz int) uint32 {
	h := seed*1103515245 + 12345
	h ^= uint32(cx) * 73856093
	h = (h*1103515245 + 12345) ^ uint32(cz)*19349663
	return h
}

// generateChunk builds the geometry for chunk (cx, cz). Content is a
// pure function of (seed, cx, cz): the placement RNG is seeded from
// them and drawn in a fixed order per cell, so a chunk regenerated
// after eviction is identical to the original.
func generateChunk(cx, cz int, chunkSize float64, seed uint32, terrainOnly bool) *Chunk {
	c := &Chunk{Key: ChunkKey{CX: cx, CZ: cz}, TerrainOnly: terrainOnly}

	if terrainOnly {
		c.Faces = makeTerrainGrid(cx, cz, chunkSize, seed, terrainGridRes)
		return c
	}

	rng := newWorldRNG(chunkSeed(seed, cx, cz))
	cell := chunkSize / cellGrid

	for gi := 0; gi < cellGrid; gi++ {
		for gj := 0; gj < cellGrid; gj++ {
			cellX := float64(cx)*chunkSize + (float64(gi)+0.5)*cell
			cellZ := float64(cz)*chunkSize + (float64(gj)+0.5)*cell

			roll := rng.Float64()
			if roll >= treeWeight+rockWeight+bushWeight {
				continue
			}

			jx := (rng.Float64() - 0.5) * cell * 0.7
			jz := (rng.Float64() - 0.5) * cell * 0.7
			wx := cellX + jx
			wz := cellZ + jz
			angle := rng.Float64() * 2 * gomath.Pi
			baseY := TerrainHeight(wx, wz, seed)

			switch {
			case roll < treeWeight:
				height := 1.8 + rng.Float64()*1.5
				c.Faces = append(c.Faces, makePineTree(wx, wz, height, angle, baseY)...)
			case roll < treeWeight+rockWeight:
				scale := 0.25 + rng.Float64()*0.4
				c.Faces = append(c.Faces, makeRock(wx, wz, scale, angle, rng, baseY)...)
			default:
				scale := 0.4 + rng.Float64()*0.3
				c.Faces = append(c.Faces, makeBush(wx, wz, scale, angle, baseY)...)
			}
		}
	}

	c.Faces = append(c.Faces, makeTerrainGrid(cx, cz, chunkSize, seed, fullGridRes)...)
	return c
}
