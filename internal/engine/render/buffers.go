package render

import (
	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/lighting"
)

// MeshBuffers holds flat GPU-uploadable geometry for a set of faces.
// Polygons are fan-triangulated; every vertex of a face carries the
// face normal so shading stays flat, plus an RGB color resolved from
// the face's wire style.
type MeshBuffers struct {
	Positions []float32 // xyz per vertex
	Normals   []float32 // xyz per vertex
	Colors    []float32 // rgb per vertex
	Indices   []uint32
}

// BuildMeshBuffers flattens faces for upload. The character renderer
// never calls this; it exists for presenters that hand geometry to a
// GPU instead of rasterizing on the CPU.
func BuildMeshBuffers(faces []Face, cfg Config) MeshBuffers {
	var mb MeshBuffers
	for _, face := range faces {
		n := len(face.Verts)
		if n < 3 {
			continue
		}

		var col [3]float32
		switch face.Wire {
		case WireTerrain:
			col = styleColor(cfg.TerrainStyle)
		case WirePath:
			col = styleColor(cfg.PathStyle)
		default:
			col = cfg.FillColor
		}

		base := uint32(len(mb.Positions) / 3)
		for _, v := range face.Verts {
			mb.Positions = append(mb.Positions, float32(v.X), float32(v.Y), float32(v.Z))
			mb.Normals = append(mb.Normals,
				float32(face.Normal.X), float32(face.Normal.Y), float32(face.Normal.Z))
			mb.Colors = append(mb.Colors, col[0], col[1], col[2])
		}
		for i := 2; i < n; i++ {
			mb.Indices = append(mb.Indices, base, base+uint32(i-1), base+uint32(i))
		}
	}
	return mb
}

func styleColor(s EdgeStyle) [3]float32 {
	return [3]float32{float32(s.R) / 255, float32(s.G) / 255, float32(s.B) / 255}
}

// FrameUniforms carries the per-frame values a GPU presenter needs.
type FrameUniforms struct {
	View        [16]float32 // column-major world-to-camera matrix
	LightPos    [3]float32  // world space
	Ambient     float32
	FogDistance float32
	FogColor    [3]float32
}

// BuildFrameUniforms packs the camera basis and lighting configuration
// for shader upload. The view matrix applies the transposed camera
// basis and the negated projected position, the same transform
// camera.ViewTransform computes per vertex.
func BuildFrameUniforms(cam *camera.Camera, cfg Config) FrameUniforms {
	r, u, fwd, p := cam.Right, cam.Up, cam.Forward, cam.Position

	var view [16]float32
	view[0], view[4], view[8] = float32(r.X), float32(r.Y), float32(r.Z)
	view[1], view[5], view[9] = float32(u.X), float32(u.Y), float32(u.Z)
	view[2], view[6], view[10] = float32(fwd.X), float32(fwd.Y), float32(fwd.Z)
	view[12] = float32(-r.Dot(p))
	view[13] = float32(-u.Dot(p))
	view[14] = float32(-fwd.Dot(p))
	view[15] = 1

	light := lighting.PointLight{Position: cfg.LightPos, Ambient: cfg.Ambient}
	pos, ambient := light.GPU()

	return FrameUniforms{
		View:        view,
		LightPos:    pos,
		Ambient:     ambient,
		FogDistance: float32(cfg.FogDistance),
		FogColor:    cfg.FogColor,
	}
}
