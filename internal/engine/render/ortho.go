package render

import (
	gomath "math"

	"github.com/g0blinResearch/asciirender/internal/engine/lighting"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// RenderOrtho draws the renderable with the auto-fitted orthographic
// projection used by spin mode. Faces whose normal points away from
// the viewer are culled, edges are always outlined. The returned
// frame is reused by the next render call.
func (r *Renderer) RenderOrtho(m Renderable) *Frame {
	f := r.frame
	f.Clear()

	type orthoFace struct {
		face   Face
		xs, ys []int
	}

	light := lighting.PointLight{Position: r.cfg.LightPos, Ambient: r.cfg.Ambient}

	var visible []orthoFace
	for _, face := range m.Faces() {
		if face.Normal.Z <= 0 {
			continue
		}
		xs := make([]int, len(face.Verts))
		ys := make([]int, len(face.Verts))
		inView := true
		for i, v := range face.Verts {
			x, y, ok := r.projectOrtho(v)
			if !ok {
				inView = false
				break
			}
			xs[i], ys[i] = x, y
		}
		if !inView {
			continue
		}
		visible = append(visible, orthoFace{face: face, xs: xs, ys: ys})
	}

	for _, of := range visible {
		r.fillOrtho(f, of.face, of.xs, of.ys, light)
	}

	s := r.cfg.EdgeStyle
	cell := Cell{Ch: s.Ch, R: s.R, G: s.G, B: s.B, Colored: true}
	for _, of := range visible {
		n := len(of.xs)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			drawLine(f, of.xs[i], of.ys[i], of.xs[j], of.ys[j],
				of.face.Verts[i].Z, of.face.Verts[j].Z, cell, 0.005)
		}
	}
	return f
}

// projectOrtho maps a model-space vertex straight to screen cells.
// Vertices far outside the viewport reject the whole face; the margin
// is generous enough that any partially visible face survives.
func (r *Renderer) projectOrtho(v math.Vec3) (int, int, bool) {
	w, h := r.cfg.Width, r.cfg.Height
	x := int(gomath.Round(v.X*r.scale + float64(w/2)))
	y := int(gomath.Round(-v.Y*r.scale/r.cfg.CharAspect + float64(h/2)))
	margin := maxInt(w, h)
	if x < -margin || x >= w+margin || y < -margin || y >= h+margin {
		return 0, 0, false
	}
	return x, y, true
}

// fillOrtho rasterizes one face over its screen bounding box with a
// convex point-in-polygon test, reconstructing model-space depth from
// the face plane for the z-buffer.
func (r *Renderer) fillOrtho(f *Frame, face Face, xs, ys []int, light lighting.PointLight) {
	xMin, xMax := xs[0], xs[0]
	yMin, yMax := ys[0], ys[0]
	for i := 1; i < len(xs); i++ {
		if xs[i] < xMin {
			xMin = xs[i]
		}
		if xs[i] > xMax {
			xMax = xs[i]
		}
		if ys[i] < yMin {
			yMin = ys[i]
		}
		if ys[i] > yMax {
			yMax = ys[i]
		}
	}
	if xMin < 0 {
		xMin = 0
	}
	if xMax > f.W-1 {
		xMax = f.W - 1
	}
	if yMin < 0 {
		yMin = 0
	}
	if yMax > f.H-1 {
		yMax = f.H - 1
	}

	halfW, halfH := f.W/2, f.H/2
	invScale := 1.0 / r.scale

	n := face.Normal
	nzInv := 0.0
	if gomath.Abs(n.Z) > 1e-10 {
		nzInv = 1.0 / n.Z
	}
	v0 := face.Verts[0]

	ramp := r.cfg.ShadeRamp
	numShades := len(ramp) - 1

	for y := yMin; y <= yMax; y++ {
		wy := -float64(y-halfH) * r.cfg.CharAspect * invScale
		row := y * f.W
		for x := xMin; x <= xMax; x++ {
			if !pointInPolygon(x, y, xs, ys) {
				continue
			}
			wx := float64(x-halfW) * invScale
			wz := v0.Z - (n.X*(wx-v0.X)+n.Y*(wy-v0.Y))*nzInv

			idx := row + x
			if wz < f.Depth[idx] {
				continue
			}
			f.Depth[idx] = wz

			brightness := light.Shade(math.Vec3{X: wx, Y: wy, Z: wz}, n)
			shade := int(brightness * float64(numShades))
			if shade < 0 {
				shade = 0
			} else if shade > numShades {
				shade = numShades
			}
			f.Cells[idx] = Cell{Ch: ramp[shade]}
		}
	}
}
