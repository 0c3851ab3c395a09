package world

import (
	gomath "math"
	"sort"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// Player spawn. The landmark peak sits a short walk north of it.
const (
	spawnX = 6.0
	spawnZ = 6.0
)

// Per-frame generation budgets on warm updates. Full chunks place
// objects and are the expensive tier; terrain-only chunks are cheap
// and get a higher allowance so ground gaps and distant peaks fill in
// quickly. The very first update ignores the budgets and loads every
// required chunk so the world never starts half-empty.
const (
	terrainLoadBudget  = 8
	mountainLoadBudget = 8
)

// World streams procedurally generated forest chunks around a moving
// camera. Chunks load in three concentric tiers (full detail, terrain
// only, distant mountain silhouettes) and unload once the camera moves
// away. World satisfies render.Renderable, so the renderer draws it
// exactly like a static model.
type World struct {
	seed           uint32
	chunkSize      float64
	renderDistance int

	chunks   map[ChunkKey]*Chunk
	mtnCache map[ChunkKey]bool

	camPos     math.Vec3
	camForward math.Vec3

	oakPos    math.Vec3
	oakFaces  []render.Face
	pathFaces []render.Face

	lastFaceCount int
	mtnNeeded     int
}

// NewWorld creates a world for the given seed. The landmark oak and
// its path markers are placed immediately; chunks stream in on Update.
func NewWorld(seed uint32, chunkSize float64, renderDistance int) *World {
	w := &World{
		seed:           seed,
		chunkSize:      chunkSize,
		renderDistance: renderDistance,
		chunks:         make(map[ChunkKey]*Chunk),
		mtnCache:       make(map[ChunkKey]bool),
		camForward:     math.Vec3{Z: -1},
	}
	w.placeLandmarkOak()
	return w
}

// placeLandmarkOak spawns the one broadleaf oak a short walk from
// spawn and lays diamond path markers along the straight line to it.
// Its own RNG stream keeps the position independent of chunk loading.
func (w *World) placeLandmarkOak() {
	rng := newWorldRNG(w.seed + 999999)

	distance := 5.0 + rng.Float64()*3.0
	angle := rng.Float64() * 2 * gomath.Pi
	wx := spawnX + distance*gomath.Sin(angle)
	wz := spawnZ + distance*gomath.Cos(angle)
	baseY := TerrainHeight(wx, wz, w.seed)

	height := 3.5 + rng.Float64()*0.5
	treeAngle := rng.Float64() * 2 * gomath.Pi

	w.oakPos = math.Vec3{X: wx, Y: baseY, Z: wz}
	w.oakFaces = makeOakTree(wx, wz, height, treeAngle, baseY)

	// One marker every 1.5 units from spawn to the oak, sitting just
	// above the ground so the fill pass cannot swallow it.
	pathLen := gomath.Sqrt((wx-spawnX)*(wx-spawnX) + (wz-spawnZ)*(wz-spawnZ))
	markers := int(pathLen / 1.5)
	for i := 0; i <= markers; i++ {
		t := float64(i) / gomath.Max(float64(markers), 1)
		px := spawnX + t*(wx-spawnX)
		pz := spawnZ + t*(wz-spawnZ)
		py := TerrainHeight(px, pz, w.seed) + 0.01
		w.pathFaces = append(w.pathFaces, makePathMarker(px, py, pz, 0.6))
	}
}

// Update loads and unloads chunks around the camera and returns the
// keys it evicted so the caller can release any per-chunk resources.
//
// Three tiers are kept resident:
//  1. full detail within renderDistance,
//  2. terrain-only out to max(8, renderDistance*3), closing the gap
//     between nearby geometry and the horizon,
//  3. terrain-only mountain chunks out to max(16, renderDistance*3),
//     so distant peaks stay visible far beyond the normal draw range.
//
// On warm updates each tier loads at most its per-frame budget of new
// chunks, amortizing generation cost; the first update fills all
// tiers at once.
func (w *World) Update(position, forward math.Vec3) []ChunkKey {
	w.camPos = position
	w.camForward = forward

	cs := w.chunkSize
	camCX := int(gomath.Floor(position.X / cs))
	camCZ := int(gomath.Floor(position.Z / cs))
	rd := w.renderDistance

	terrainRd := rd * 3
	if terrainRd < 8 {
		terrainRd = 8
	}
	mtnRd := rd * 3
	if mtnRd < 16 {
		mtnRd = 16
	}

	coldStart := len(w.chunks) == 0

	tier := func(k ChunkKey) int {
		d := chebyshev(k.CX-camCX, k.CZ-camCZ)
		switch {
		case d <= rd:
			return 1
		case d <= terrainRd:
			return 2
		case d <= mtnRd && w.hasMountain(k):
			return 3
		default:
			return 0
		}
	}

	// Unload whatever no longer falls in any tier.
	var removed []ChunkKey
	for k := range w.chunks {
		if tier(k) == 0 {
			removed = append(removed, k)
			delete(w.chunks, k)
		}
	}
	sortKeys(removed)

	// Tier 1: full detail.
	fullBudget := 2
	if rd > 3 {
		fullBudget = 4
	}
	if coldStart {
		fullBudget = gomath.MaxInt32
	}
	loaded := 0
	for dx := -rd; dx <= rd && loaded < fullBudget; dx++ {
		for dz := -rd; dz <= rd && loaded < fullBudget; dz++ {
			k := ChunkKey{CX: camCX + dx, CZ: camCZ + dz}
			if _, ok := w.chunks[k]; !ok {
				w.chunks[k] = generateChunk(k.CX, k.CZ, cs, w.seed, false)
				loaded++
			}
		}
	}

	// Tier 2: intermediate terrain-only ring.
	budget := terrainLoadBudget
	if coldStart {
		budget = gomath.MaxInt32
	}
	loaded = 0
	for dx := -terrainRd; dx <= terrainRd && loaded < budget; dx++ {
		for dz := -terrainRd; dz <= terrainRd && loaded < budget; dz++ {
			if chebyshev(dx, dz) <= rd {
				continue
			}
			k := ChunkKey{CX: camCX + dx, CZ: camCZ + dz}
			if _, ok := w.chunks[k]; !ok {
				w.chunks[k] = generateChunk(k.CX, k.CZ, cs, w.seed, true)
				loaded++
			}
		}
	}

	// Tier 3: distant mountain silhouettes. The whole ring is scanned
	// every update to keep the diagnostic count current; the mountain
	// cache makes the rescan cheap.
	budget = mountainLoadBudget
	if coldStart {
		budget = gomath.MaxInt32
	}
	loaded = 0
	w.mtnNeeded = 0
	for dx := -mtnRd; dx <= mtnRd; dx++ {
		for dz := -mtnRd; dz <= mtnRd; dz++ {
			if chebyshev(dx, dz) <= terrainRd {
				continue
			}
			k := ChunkKey{CX: camCX + dx, CZ: camCZ + dz}
			if !w.hasMountain(k) {
				continue
			}
			w.mtnNeeded++
			if loaded >= budget {
				continue
			}
			if _, ok := w.chunks[k]; !ok {
				w.chunks[k] = generateChunk(k.CX, k.CZ, cs, w.seed, true)
				loaded++
			}
		}
	}

	return removed
}

// hasMountain answers chunkHasMountain through a permanent cache. The
// classification is a pure function of the key, so entries never
// invalidate.
func (w *World) hasMountain(k ChunkKey) bool {
	if v, ok := w.mtnCache[k]; ok {
		return v
	}
	v := ChunkHasMountain(k.CX, k.CZ, w.chunkSize, w.seed)
	w.mtnCache[k] = v
	return v
}

// Faces returns the geometry of every visible chunk plus the landmark
// oak and its path markers. Chunks wholly behind the camera are
// skipped, as are terrain-only chunks too far away for their
// wireframe to cover a pixel. Chunks are walked in key order so
// output is reproducible across runs.
func (w *World) Faces() []render.Face {
	cs := w.chunkSize
	maxWire := cs * 10.0
	maxWireSq := maxWire * maxWire

	keys := make([]ChunkKey, 0, len(w.chunks))
	for k := range w.chunks {
		keys = append(keys, k)
	}
	sortKeys(keys)

	var result []render.Face
	for _, k := range keys {
		c := w.chunks[k]

		ccx := float64(k.CX)*cs + cs*0.5
		ccz := float64(k.CZ)*cs + cs*0.5
		dx := ccx - w.camPos.X
		dz := ccz - w.camPos.Z

		// Behind the camera, with a generous margin for chunk size.
		if dx*w.camForward.X+dz*w.camForward.Z < -cs*1.5 {
			continue
		}
		if c.TerrainOnly && dx*dx+dz*dz > maxWireSq {
			continue
		}
		result = append(result, c.Faces...)
	}

	result = append(result, w.pathFaces...)
	result = append(result, w.oakFaces...)

	w.lastFaceCount = len(result)
	return result
}

// BoundingRadius satisfies render.Renderable; the ortho auto-fit path
// never draws a streaming world, so the value only needs a sane scale.
func (w *World) BoundingRadius() float64 {
	return w.chunkSize * float64(w.renderDistance)
}

// Spawn returns the fixed player spawn position at ground level.
func (w *World) Spawn() math.Vec3 {
	return math.Vec3{X: spawnX, Y: 0, Z: spawnZ}
}

// OakPosition returns the landmark oak's base position.
func (w *World) OakPosition() math.Vec3 { return w.oakPos }

// LandmarkFaces returns the path markers and the landmark oak, the
// only geometry that lives outside the chunk grid. The set is fixed
// at construction, so presenters can upload it once.
func (w *World) LandmarkFaces() []render.Face {
	out := make([]render.Face, 0, len(w.pathFaces)+len(w.oakFaces))
	out = append(out, w.pathFaces...)
	out = append(out, w.oakFaces...)
	return out
}

// SetRenderDistance changes the full-detail radius; values below 1
// are clamped. The streaming tiers pick the change up on next Update.
func (w *World) SetRenderDistance(rd int) {
	if rd < 1 {
		rd = 1
	}
	w.renderDistance = rd
}

// RenderDistance returns the current full-detail radius in chunks.
func (w *World) RenderDistance() int { return w.renderDistance }

// ChunkSize returns the chunk edge length in world units.
func (w *World) ChunkSize() float64 { return w.chunkSize }

// LoadedChunks returns how many chunks are currently resident.
func (w *World) LoadedChunks() int { return len(w.chunks) }

// MountainChunks returns how many distant mountain chunks the last
// Update wanted resident, for the status line.
func (w *World) MountainChunks() int { return w.mtnNeeded }

// LastFaceCount returns the number of faces the last Faces call
// produced, for the status line.
func (w *World) LastFaceCount() int { return w.lastFaceCount }

// ResidentChunks calls fn for every loaded chunk in sorted key order.
// GPU presenters keep one vertex buffer per chunk; together with the
// removed keys Update returns, this is enough to mirror residency
// without reaching into the chunk map.
func (w *World) ResidentChunks(fn func(ChunkKey, *Chunk)) {
	keys := make([]ChunkKey, 0, len(w.chunks))
	for k := range w.chunks {
		keys = append(keys, k)
	}
	sortKeys(keys)
	for _, k := range keys {
		fn(k, w.chunks[k])
	}
}

func chebyshev(dx, dz int) int {
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dz > dx {
		dx = dz
	}
	return dx
}

func sortKeys(keys []ChunkKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		return keys[i].CZ < keys[j].CZ
	})
}
