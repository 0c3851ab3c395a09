package render

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/lighting"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// projFace is one face that survived view transform and clipping,
// with its screen projection computed once and shared by the fill and
// edge passes.
type projFace struct {
	cam    []math.Vec3 // clipped camera-space vertices
	normal math.Vec3   // camera-space face normal
	wire   WireStyle
	worldY float64 // face centroid height, drives altitude fog relief
	px, py []int
}

// RenderPerspective draws the renderable through the camera with
// perspective projection. There is no back-face culling: the camera
// may sit inside open or concave geometry, so every face rasterizes
// and the depth buffer alone decides visibility. The returned frame
// is reused by the next render call.
func (r *Renderer) RenderPerspective(m Renderable, cam *camera.Camera) *Frame {
	near := r.cfg.Near

	light := lighting.PointLight{
		Position: cam.ViewTransform(r.cfg.LightPos),
		Ambient:  r.cfg.Ambient,
	}

	var visible []projFace
	for _, face := range m.Faces() {
		camVs := make([]math.Vec3, len(face.Verts))
		anyInFront := false
		for i, v := range face.Verts {
			cv := cam.ViewTransform(v)
			if cv.Z > near {
				anyInFront = true
			}
			camVs[i] = cv
		}
		if !anyInFront {
			continue
		}

		clipped := clipNearPlane(camVs, near)
		if len(clipped) < 3 {
			continue
		}

		px := make([]int, len(clipped))
		py := make([]int, len(clipped))
		for i, cv := range clipped {
			px[i], py[i] = r.projectPerspective(cv)
		}

		visible = append(visible, projFace{
			cam:    clipped,
			normal: cam.TransformDirection(face.Normal),
			wire:   face.Wire,
			worldY: face.Center.Y,
			px:     px,
			py:     py,
		})
	}

	f := r.frame
	f.Clear()

	for i := range visible {
		if visible[i].wire != WireNone {
			continue
		}
		r.fillPerspective(f, &visible[i], light)
	}
	r.drawPerspectiveEdges(f, visible)
	return f
}

// projectPerspective maps a clipped camera-space vertex to screen
// cells. Vertices sitting exactly on the near plane project to
// extreme coordinates; those are clamped rather than rejected, so a
// clipped face stays drawable while Bresenham cost stays bounded.
func (r *Renderer) projectPerspective(cv math.Vec3) (int, int) {
	w, h := r.cfg.Width, r.cfg.Height
	limit := float64(maxInt(w, h) * 10)

	fx := gomath.Round(r.focal*cv.X/cv.Z + float64(w/2))
	fy := gomath.Round(-r.focal*cv.Y/(cv.Z*r.cfg.CharAspect) + float64(h/2))
	if fx > limit {
		fx = limit
	} else if fx < -limit {
		fx = -limit
	}
	if fy > limit {
		fy = limit
	} else if fy < -limit {
		fy = -limit
	}
	return int(fx), int(fy)
}

// edgeRec is one non-horizontal polygon edge, stored top-down.
type edgeRec struct {
	x0, y0, y1 int
	slope      float64
}

// fillPerspective scanline-fills one clipped face. Each covered row
// gets its exact left/right edge intersections, and each cell inside
// reconstructs camera-space depth analytically from the face plane,
// so occlusion is per-cell correct even for interpenetrating faces.
func (r *Renderer) fillPerspective(f *Frame, pf *projFace, light lighting.PointLight) {
	nVerts := len(pf.px)

	yMin, yMax := pf.py[0], pf.py[0]
	for i := 1; i < nVerts; i++ {
		if pf.py[i] < yMin {
			yMin = pf.py[i]
		} else if pf.py[i] > yMax {
			yMax = pf.py[i]
		}
	}
	if yMin < 0 {
		yMin = 0
	}
	if yMax > f.H-1 {
		yMax = f.H - 1
	}
	if yMin > yMax {
		return
	}

	halfW, halfH := f.W/2, f.H/2
	invFocal := 1.0 / r.focal

	n := pf.normal
	planeD := n.Dot(pf.cam[0]) // n·p = planeD for every p on the face

	ramp := r.cfg.ShadeRamp
	numShades := len(ramp) - 1
	near := r.cfg.Near
	fogDist := r.cfg.FogDistance

	edges := make([]edgeRec, 0, nVerts)
	for i := 0; i < nVerts; i++ {
		j := (i + 1) % nVerts
		x0, y0 := pf.px[i], pf.py[i]
		x1, y1 := pf.px[j], pf.py[j]
		if y0 == y1 {
			continue
		}
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		edges = append(edges, edgeRec{
			x0: x0, y0: y0, y1: y1,
			slope: float64(x1-x0) / float64(y1-y0),
		})
	}

	for y := yMin; y <= yMax; y++ {
		xLeft := gomath.Inf(1)
		xRight := gomath.Inf(-1)
		for _, e := range edges {
			if e.y0 <= y && y <= e.y1 {
				ix := float64(e.x0) + float64(y-e.y0)*e.slope
				if ix < xLeft {
					xLeft = ix
				}
				if ix > xRight {
					xRight = ix
				}
			}
		}
		// Vertices sitting exactly on this row catch polygon tips the
		// edge walk misses.
		for i := 0; i < nVerts; i++ {
			if pf.py[i] == y {
				vx := float64(pf.px[i])
				if vx < xLeft {
					xLeft = vx
				}
				if vx > xRight {
					xRight = vx
				}
			}
		}
		if xLeft > xRight {
			continue
		}

		xl := 0
		if xLeft >= 0 {
			xl = int(xLeft)
		}
		xr := int(xRight)
		if xr > f.W-1 {
			xr = f.W - 1
		}
		if xl > xr {
			continue
		}

		ry := -float64(y-halfH) * r.cfg.CharAspect * invFocal
		row := y * f.W

		for x := xl; x <= xr; x++ {
			rx := float64(x-halfW) * invFocal

			denom := n.X*rx + n.Y*ry + n.Z
			if gomath.Abs(denom) < 1e-10 {
				continue
			}
			camZ := planeD / denom
			if camZ <= near {
				continue
			}

			idx := row + x
			depth := -camZ
			if depth < f.Depth[idx] {
				continue
			}
			f.Depth[idx] = depth

			point := math.Vec3{X: rx * camZ, Y: ry * camZ, Z: camZ}
			brightness := light.Shade(point, n)

			if fogDist > 0 {
				fog := camZ / fogDist
				if fog > 1 {
					fog = 1
				}
				brightness *= 1.0 - fog*fog
			}

			shade := int(brightness * float64(numShades))
			if shade <= 0 && fogDist > 0 {
				// Fully fogged cells stay empty instead of painting
				// the darkest ramp character over the whole horizon.
				continue
			}
			if shade < 0 {
				shade = 0
			} else if shade > numShades {
				shade = numShades
			}
			f.Cells[idx] = Cell{Ch: ramp[shade]}
		}
	}
}

type edgeCacheKey struct {
	terrain bool
	q       int
}

// drawPerspectiveEdges outlines every visible face. Wireframe-styled
// faces always draw; filled faces only when DrawEdges is on. Edge
// cells are fog-faded by quantized level, cached so the hundreds of
// terrain faces at one fade level share a single cell value.
func (r *Renderer) drawPerspectiveEdges(f *Frame, visible []projFace) {
	fogDist := r.cfg.FogDistance
	cache := make(map[edgeCacheKey]Cell)

	for vi := range visible {
		pf := &visible[vi]
		isWire := pf.wire != WireNone
		if !isWire && !r.cfg.DrawEdges {
			continue
		}

		fade := 1.0
		if fogDist > 0 {
			total := 0.0
			for _, cv := range pf.cam {
				total += cv.Z
			}
			fog := total / float64(len(pf.cam)) / fogDist
			if fog > 1 {
				fog = 1
			}
			// Wireframe high above the valley floor fades far more
			// slowly, keeping mountain silhouettes past the fog wall.
			if isWire && pf.worldY > 4.0 {
				alt := (pf.worldY - 4.0) / 15.0
				if alt > 1 {
					alt = 1
				}
				fog *= 1.0 - alt*0.92
			}
			fade = 1.0 - fog*fog
			if fade < 0.03 {
				continue
			}
		}

		var cell Cell
		if pf.wire == WirePath {
			// Path markers keep their full color at any distance.
			s := r.cfg.PathStyle
			cell = Cell{Ch: s.Ch, R: s.R, G: s.G, B: s.B, Colored: true}
		} else {
			key := edgeCacheKey{terrain: isWire, q: int(fade * 20)}
			var ok bool
			if cell, ok = cache[key]; !ok {
				ff := float64(key.q) * 0.05
				s := r.cfg.EdgeStyle
				if isWire {
					s = r.cfg.TerrainStyle
				}
				cell = Cell{
					Ch:      s.Ch,
					R:       uint8(float64(s.R) * ff),
					G:       uint8(float64(s.G) * ff),
					B:       uint8(float64(s.B) * ff),
					Colored: true,
				}
				cache[key] = cell
			}
		}

		// Filled faces bias their outline slightly forward so it wins
		// against their own fill; wireframe draws at true depth.
		zBias := 0.005
		if isWire {
			zBias = 0.0
		}
		nv := len(pf.px)
		for i := 0; i < nv; i++ {
			j := (i + 1) % nv
			drawLine(f, pf.px[i], pf.py[i], pf.px[j], pf.py[j],
				-pf.cam[i].Z, -pf.cam[j].Z, cell, zBias)
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
