package render

// drawLine plots a Bresenham line with incrementally interpolated
// depth. The depth test lets ties through, so an edge laid at the
// same biased depth as its own fill wins the cell while nearer
// geometry still occludes it.
func drawLine(f *Frame, x1, y1, x2, y2 int, z1, z2 float64, cell Cell, zBias float64) {
	dx := x2 - x1
	if dx < 0 {
		dx = -dx
	}
	dy := y2 - y1
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	steps := dx
	if dy > steps {
		steps = dy
	}
	z := z1 + zBias
	zInc := 0.0
	if steps > 0 {
		zInc = (z2 - z1) / float64(steps)
	}

	for {
		if x1 >= 0 && x1 < f.W && y1 >= 0 && y1 < f.H {
			idx := y1*f.W + x1
			if z >= f.Depth[idx] {
				f.Depth[idx] = z
				f.Cells[idx] = cell
			}
		}
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
		z += zInc
	}
}

// pointInPolygon reports whether (px, py) lies inside a convex
// polygon by requiring every edge cross product to share a sign.
func pointInPolygon(px, py int, xs, ys []int) bool {
	pos, neg := false, false
	n := len(xs)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := (px-xs[j])*(ys[i]-ys[j]) - (xs[i]-xs[j])*(py-ys[j])
		if d > 0 {
			pos = true
		} else if d < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
