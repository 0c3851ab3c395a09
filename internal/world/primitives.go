package world

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// rotateY rotates a local (x, z) offset by a precomputed cos/sin pair.
func rotateY(lx, lz, ca, sa float64) (float64, float64) {
	return lx*ca + lz*sa, -lx*sa + lz*ca
}

// makePineTree builds a pine at (wx, baseY, wz): a 4-quad trunk plus
// 3 stacked pyramid canopy tiers, each tier narrower and higher, for
// the classic spruce silhouette. 16 faces.
func makePineTree(wx, wz, height, angle, baseY float64) []render.Face {
	faces := make([]render.Face, 0, 16)
	ca, sa := gomath.Cos(angle), gomath.Sin(angle)

	const trunkHalfWidth = 0.10
	trunkHeight := height * 0.40

	corners := [4][2]float64{
		{-trunkHalfWidth, -trunkHalfWidth},
		{trunkHalfWidth, -trunkHalfWidth},
		{trunkHalfWidth, trunkHalfWidth},
		{-trunkHalfWidth, trunkHalfWidth},
	}
	var bottom, top [4]math.Vec3
	for i, c := range corners {
		rx, rz := rotateY(c[0], c[1], ca, sa)
		bottom[i] = math.Vec3{X: wx + rx, Y: baseY, Z: wz + rz}
		top[i] = math.Vec3{X: wx + rx, Y: baseY + trunkHeight, Z: wz + rz}
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces = append(faces, render.MakeFace(bottom[i], bottom[j], top[j], top[i]))
	}

	// Canopy starts below the trunk top so the tiers overlap it.
	canopyStart := trunkHeight * 0.70
	tierHeight := (height - canopyStart) / 3

	for t := 0; t < 3; t++ {
		tf := float64(t)
		tierBaseY := canopyStart + tf*tierHeight*0.65
		tierApexY := canopyStart + (tf+1)*tierHeight + tf*tierHeight*0.05
		tierRadius := height * (0.38 - 0.10*tf/3)

		apex := math.Vec3{X: wx, Y: baseY + tierApexY, Z: wz}
		var ring [4]math.Vec3
		for i, c := range [4][2]float64{
			{-tierRadius, -tierRadius},
			{tierRadius, -tierRadius},
			{tierRadius, tierRadius},
			{-tierRadius, tierRadius},
		} {
			rx, rz := rotateY(c[0], c[1], ca, sa)
			ring[i] = math.Vec3{X: wx + rx, Y: baseY + tierBaseY, Z: wz + rz}
		}
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			faces = append(faces, render.MakeFace(ring[i], ring[j], apex))
		}
	}
	return faces
}

// makeRock builds an irregular tetrahedron with a jittered apex.
func makeRock(wx, wz, scale, angle float64, rng *worldRNG, baseY float64) []render.Face {
	ca, sa := gomath.Cos(angle), gomath.Sin(angle)

	rh := scale * (0.3 + rng.Float64()*0.3)
	rw := scale * 0.5
	offX := scale * (rng.Float64() - 0.5) * 0.3
	offZ := scale * (rng.Float64() - 0.5) * 0.3

	local := [4][3]float64{
		{-rw, baseY, -rw * 0.7},
		{rw, baseY, -rw * 0.5},
		{rw * 0.3, baseY, rw},
		{offX, baseY + rh, offZ},
	}
	var pts [4]math.Vec3
	for i, p := range local {
		rx, rz := rotateY(p[0], p[2], ca, sa)
		pts[i] = math.Vec3{X: wx + rx, Y: p[1], Z: wz + rz}
	}

	return []render.Face{
		render.MakeFace(pts[0], pts[1], pts[3]),
		render.MakeFace(pts[1], pts[2], pts[3]),
		render.MakeFace(pts[2], pts[0], pts[3]),
		render.MakeFace(pts[0], pts[2], pts[1]),
	}
}

// makeBush builds a single low pyramid.
func makeBush(wx, wz, scale, angle, baseY float64) []render.Face {
	ca, sa := gomath.Cos(angle), gomath.Sin(angle)

	bw := scale * 0.4
	bh := scale * 0.35
	apex := math.Vec3{X: wx, Y: baseY + bh, Z: wz}

	var base [4]math.Vec3
	for i, c := range [4][2]float64{{-bw, -bw}, {bw, -bw}, {bw, bw}, {-bw, bw}} {
		rx, rz := rotateY(c[0], c[1], ca, sa)
		base[i] = math.Vec3{X: wx + rx, Y: baseY, Z: wz + rz}
	}

	faces := make([]render.Face, 0, 4)
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces = append(faces, render.MakeFace(base[i], base[j], apex))
	}
	return faces
}

// makeOakTree builds the landmark broadleaf oak: a thicker trunk than
// the pines and a single rounded 8-triangle canopy instead of tiers.
func makeOakTree(wx, wz, height, angle, baseY float64) []render.Face {
	faces := make([]render.Face, 0, 12)
	ca, sa := gomath.Cos(angle), gomath.Sin(angle)

	const trunkHalfWidth = 0.15
	trunkHeight := height * 0.45

	corners := [4][2]float64{
		{-trunkHalfWidth, -trunkHalfWidth},
		{trunkHalfWidth, -trunkHalfWidth},
		{trunkHalfWidth, trunkHalfWidth},
		{-trunkHalfWidth, trunkHalfWidth},
	}
	var bottom, top [4]math.Vec3
	for i, c := range corners {
		rx, rz := rotateY(c[0], c[1], ca, sa)
		bottom[i] = math.Vec3{X: wx + rx, Y: baseY, Z: wz + rz}
		top[i] = math.Vec3{X: wx + rx, Y: baseY + trunkHeight, Z: wz + rz}
	}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces = append(faces, render.MakeFace(bottom[i], bottom[j], top[j], top[i]))
	}

	canopyCenterY := baseY + trunkHeight + height*0.35
	canopyRadius := height * 0.45

	var ring [4]math.Vec3
	for i, c := range [4][2]float64{
		{-canopyRadius * 0.7, -canopyRadius * 0.7},
		{canopyRadius * 0.7, -canopyRadius * 0.7},
		{canopyRadius * 0.7, canopyRadius * 0.7},
		{-canopyRadius * 0.7, canopyRadius * 0.7},
	} {
		rx, rz := rotateY(c[0], c[1], ca, sa)
		ring[i] = math.Vec3{X: wx + rx, Y: canopyCenterY, Z: wz + rz}
	}

	apex := math.Vec3{X: wx, Y: baseY + trunkHeight + canopyRadius*1.1, Z: wz}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces = append(faces, render.MakeFace(ring[i], ring[j], apex))
	}

	bottomApex := math.Vec3{X: wx, Y: canopyCenterY - canopyRadius*0.5, Z: wz}
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		faces = append(faces, render.MakeFace(ring[j], ring[i], bottomApex))
	}
	return faces
}

// makeTerrainGrid emits res x res wireframe quads spanning the chunk,
// with vertex heights sampled from TerrainHeight.
func makeTerrainGrid(cx, cz int, chunkSize float64, seed uint32, res int) []render.Face {
	cell := chunkSize / float64(res)
	x0 := float64(cx) * chunkSize
	z0 := float64(cz) * chunkSize

	grid := make([][]math.Vec3, res+1)
	for gi := 0; gi <= res; gi++ {
		grid[gi] = make([]math.Vec3, res+1)
		for gj := 0; gj <= res; gj++ {
			vx := x0 + float64(gi)*cell
			vz := z0 + float64(gj)*cell
			grid[gi][gj] = math.Vec3{X: vx, Y: TerrainHeight(vx, vz, seed), Z: vz}
		}
	}

	faces := make([]render.Face, 0, res*res)
	for gi := 0; gi < res; gi++ {
		for gj := 0; gj < res; gj++ {
			faces = append(faces, render.MakeWireFace(render.WireTerrain,
				grid[gi][gj], grid[gi+1][gj], grid[gi+1][gj+1], grid[gi][gj+1]))
		}
	}
	return faces
}

// makePathMarker emits one flat diamond marker centred on (wx, wz).
func makePathMarker(wx, wy, wz, size float64) render.Face {
	return render.MakeWireFace(render.WirePath,
		math.Vec3{X: wx, Y: wy, Z: wz - size},
		math.Vec3{X: wx + size, Y: wy, Z: wz},
		math.Vec3{X: wx, Y: wy, Z: wz + size},
		math.Vec3{X: wx - size, Y: wy, Z: wz},
	)
}
