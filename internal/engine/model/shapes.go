package model

import "github.com/g0blinResearch/asciirender/pkg/math"

// NewCube returns a cube centered at the origin with half-extent size.
func NewCube(size float64) *Model {
	s := size
	vertices := []math.Vec3{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	faces := [][]int{
		{0, 1, 2, 3}, // back
		{5, 4, 7, 6}, // front
		{4, 0, 3, 7}, // left
		{1, 5, 6, 2}, // right
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	return New(vertices, faces)
}

// NewCar returns a low-poly sedan: length along Z with the nose at
// +Z, a belt line at y=0 and a narrower cabin on top.
func NewCar(size float64) *Model {
	s := size
	vertices := []math.Vec3{
		// body bottom
		{X: -0.80 * s, Y: -0.50 * s, Z: 2.00 * s},
		{X: 0.80 * s, Y: -0.50 * s, Z: 2.00 * s},
		{X: 0.80 * s, Y: -0.50 * s, Z: -2.00 * s},
		{X: -0.80 * s, Y: -0.50 * s, Z: -2.00 * s},
		// belt line
		{X: -0.80 * s, Y: 0, Z: 2.00 * s},
		{X: 0.80 * s, Y: 0, Z: 2.00 * s},
		{X: 0.80 * s, Y: 0, Z: -2.00 * s},
		{X: -0.80 * s, Y: 0, Z: -2.00 * s},
		// windshield base
		{X: -0.80 * s, Y: 0, Z: 0.70 * s},
		{X: 0.80 * s, Y: 0, Z: 0.70 * s},
		// rear window base
		{X: 0.80 * s, Y: 0, Z: -1.00 * s},
		{X: -0.80 * s, Y: 0, Z: -1.00 * s},
		// roof
		{X: -0.72 * s, Y: 0.65 * s, Z: 0.35 * s},
		{X: 0.72 * s, Y: 0.65 * s, Z: 0.35 * s},
		{X: 0.72 * s, Y: 0.65 * s, Z: -0.65 * s},
		{X: -0.72 * s, Y: 0.65 * s, Z: -0.65 * s},
	}
	faces := [][]int{
		{0, 1, 2, 3},     // underside
		{0, 4, 5, 1},     // front bumper
		{2, 6, 7, 3},     // rear bumper
		{1, 5, 6, 2},     // right side
		{3, 7, 4, 0},     // left side
		{8, 9, 5, 4},     // hood
		{10, 11, 7, 6},   // trunk
		{8, 12, 13, 9},   // windshield
		{10, 14, 15, 11}, // rear window
		{13, 12, 15, 14}, // roof
		{9, 13, 14, 10},  // right cabin
		{11, 15, 12, 8},  // left cabin
	}
	return New(vertices, faces)
}

// NewHouse returns a small scene: a house with a pitched roof on a
// garden plane, flanked by two pyramid trees. The ground is
// double-sided so it reads from below while tumbling.
func NewHouse(size float64) *Model {
	s := size
	vertices := []math.Vec3{
		// ground plane
		{X: -2.30 * s, Y: -0.02 * s, Z: -1.80 * s},
		{X: 2.30 * s, Y: -0.02 * s, Z: -1.80 * s},
		{X: 2.30 * s, Y: -0.02 * s, Z: 1.80 * s},
		{X: -2.30 * s, Y: -0.02 * s, Z: 1.80 * s},
		// house body
		{X: -1.00 * s, Y: 0, Z: -0.75 * s},
		{X: 1.00 * s, Y: 0, Z: -0.75 * s},
		{X: 1.00 * s, Y: 0, Z: 0.75 * s},
		{X: -1.00 * s, Y: 0, Z: 0.75 * s},
		{X: -1.00 * s, Y: 1.50 * s, Z: -0.75 * s},
		{X: 1.00 * s, Y: 1.50 * s, Z: -0.75 * s},
		{X: 1.00 * s, Y: 1.50 * s, Z: 0.75 * s},
		{X: -1.00 * s, Y: 1.50 * s, Z: 0.75 * s},
		// roof eaves and ridge
		{X: -1.15 * s, Y: 1.50 * s, Z: -0.85 * s},
		{X: 1.15 * s, Y: 1.50 * s, Z: -0.85 * s},
		{X: 1.15 * s, Y: 1.50 * s, Z: 0.85 * s},
		{X: -1.15 * s, Y: 1.50 * s, Z: 0.85 * s},
		{X: 0, Y: 2.30 * s, Z: -0.85 * s},
		{X: 0, Y: 2.30 * s, Z: 0.85 * s},
		// left tree
		{X: -1.95 * s, Y: 0, Z: -1.15 * s},
		{X: -1.25 * s, Y: 0, Z: -1.15 * s},
		{X: -1.25 * s, Y: 0, Z: -0.45 * s},
		{X: -1.95 * s, Y: 0, Z: -0.45 * s},
		{X: -1.60 * s, Y: 1.80 * s, Z: -0.80 * s},
		// right tree
		{X: 1.35 * s, Y: 0, Z: 0.35 * s},
		{X: 1.85 * s, Y: 0, Z: 0.35 * s},
		{X: 1.85 * s, Y: 0, Z: 0.85 * s},
		{X: 1.35 * s, Y: 0, Z: 0.85 * s},
		{X: 1.60 * s, Y: 1.20 * s, Z: 0.60 * s},
	}
	faces := [][]int{
		{0, 1, 2, 3},     // ground top
		{3, 2, 1, 0},     // ground bottom
		{4, 5, 9, 8},     // front wall
		{6, 7, 11, 10},   // back wall
		{5, 6, 10, 9},    // right wall
		{7, 4, 8, 11},    // left wall
		{12, 16, 17, 15}, // left roof slope
		{13, 14, 17, 16}, // right roof slope
		{12, 13, 16},     // front gable
		{14, 15, 17},     // rear gable
		{18, 19, 22},
		{19, 20, 22},
		{20, 21, 22},
		{21, 18, 22},
		{18, 21, 20, 19}, // left tree base
		{23, 24, 27},
		{24, 25, 27},
		{25, 26, 27},
		{26, 23, 27},
		{23, 26, 25, 24}, // right tree base
	}
	return New(vertices, faces)
}
