// Package world implements the procedural forest: deterministic
// terrain noise, per-chunk object placement, and tiered chunk
// streaming around a moving camera.
package world

import gomath "math"

// Base noise parameters. Two octaves of value noise give rolling
// hills; a separate thresholded low-frequency layer adds rare steep
// mountains.
const (
	baseScale     = 8.0
	baseAmplitude = 2.5

	mountainScale   = 70.0
	mountainAmp     = 25.0
	mountainSeedXor = 0xDEADBEEF
	// Noise below this level contributes no mountain height; the
	// remainder is normalized and cubed so peaks rise sharply.
	mountainCutoff = 0.65

	// Every world gets one guaranteed landmark peak near spawn.
	landmarkX      = 6.0
	landmarkZ      = 45.0
	landmarkRadius = 18.0
	landmarkPeak   = 30.0

	// Mountain-layer noise above this classifies a chunk as mountain
	// terrain for LOD streaming.
	mountainChunkThreshold = 0.70
)

// terrainHash mixes integer grid coordinates and a seed into [0, 1].
// All arithmetic wraps at 32 bits, so every seed and coordinate pair
// is defined, including negatives.
func terrainHash(ix, iz int, seed uint32) float64 {
	h := seed*1103515245 + 12345
	h ^= uint32(ix) * 73856093
	h = (h*1103515245 + 12345) ^ uint32(iz)*19349663
	return float64(h&0xFFFF) / 0xFFFF
}

func smoothstep(t float64) float64 {
	return t * t * (3.0 - 2.0*t)
}

// valueNoise samples bilinear smoothstep-blended value noise at the
// given feature scale.
func valueNoise(wx, wz, scale float64, seed uint32) float64 {
	gx := wx / scale
	gz := wz / scale
	ix := int(gomath.Floor(gx))
	iz := int(gomath.Floor(gz))
	fx := smoothstep(gx - float64(ix))
	fz := smoothstep(gz - float64(iz))

	h00 := terrainHash(ix, iz, seed)
	h10 := terrainHash(ix+1, iz, seed)
	h01 := terrainHash(ix, iz+1, seed)
	h11 := terrainHash(ix+1, iz+1, seed)

	h0 := h00 + (h10-h00)*fx
	h1 := h01 + (h11-h01)*fx
	return h0 + (h1-h0)*fz
}

// TerrainHeight returns the terrain elevation at world position
// (wx, wz). The result is a pure function of its inputs: repeated
// calls are bit-identical, which the whole chunk system relies on.
func TerrainHeight(wx, wz float64, seed uint32) float64 {
	total := valueNoise(wx, wz, baseScale, seed) * baseAmplitude
	total += valueNoise(wx, wz, baseScale*0.4, seed) * baseAmplitude * 0.25

	// Rare tall peaks: threshold the low-frequency layer and cube
	// the remainder so only the highest noise forms mountains.
	mtn := valueNoise(wx, wz, mountainScale, seed^mountainSeedXor)
	factor := (mtn - mountainCutoff) / (1.0 - mountainCutoff)
	if factor > 0 {
		total += factor * factor * factor * mountainAmp
	}

	// Guaranteed gaussian landmark near spawn, skipped beyond 3x its
	// radius where the contribution is negligible.
	dx := wx - landmarkX
	dz := wz - landmarkZ
	d2 := dx*dx + dz*dz
	cutoff := landmarkRadius * 3.0
	if d2 < cutoff*cutoff {
		total += landmarkPeak * gomath.Exp(-d2/(2.0*landmarkRadius*landmarkRadius))
	}

	// Centre typical ground slightly below zero.
	return total - baseAmplitude*0.3
}

// ChunkHasMountain reports whether the chunk at (cx, cz) contains
// significant mountain terrain, sampled once at the chunk centre.
// Chunks near the landmark always qualify. The streaming manager
// uses this to keep distant peak silhouettes loaded.
func ChunkHasMountain(cx, cz int, chunkSize float64, seed uint32) bool {
	wx := float64(cx)*chunkSize + chunkSize*0.5
	wz := float64(cz)*chunkSize + chunkSize*0.5

	dx := wx - landmarkX
	dz := wz - landmarkZ
	cutoff := landmarkRadius * 3.0
	if dx*dx+dz*dz < cutoff*cutoff {
		return true
	}

	return valueNoise(wx, wz, mountainScale, seed^mountainSeedXor) > mountainChunkThreshold
}
