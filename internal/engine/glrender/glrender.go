// Package glrender draws the flat-shaded scene with OpenGL. It keeps
// one indexed mesh per resident world chunk plus one for the fixed
// landmark geometry, mirroring the world's residency as chunks stream
// in and out.
package glrender

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/g0blinResearch/asciirender/internal/engine/camera"
	"github.com/g0blinResearch/asciirender/internal/engine/render"
	"github.com/g0blinResearch/asciirender/internal/engine/shader"
	"github.com/g0blinResearch/asciirender/internal/logger"
	"github.com/g0blinResearch/asciirender/internal/world"
	"github.com/g0blinResearch/asciirender/pkg/math"
)

// mesh is one uploaded chunk: separate position/normal/color buffers
// plus a triangle index buffer.
type mesh struct {
	vao   uint32
	vbo   [3]uint32
	ebo   uint32
	count int32
}

// Renderer owns all GL state for the scene. It must be created after
// the GL context exists and used only from the context's thread.
type Renderer struct {
	cfg      render.Config
	prog     *shader.Program
	meshes   map[world.ChunkKey]*mesh
	landmark *mesh

	width, height int
	proj          mgl32.Mat4
}

// New initializes GL state and compiles the scene shader. cfg carries
// the same lighting, fog and color settings the character renderer
// uses, so both frontends agree on the scene's look.
func New(cfg render.Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	gpu := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("gpu", gpu),
	)

	prog, err := shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("building scene shader: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.FogColor[0], cfg.FogColor[1], cfg.FogColor[2], 1.0)

	return &Renderer{
		cfg:    cfg,
		prog:   prog,
		meshes: make(map[world.ChunkKey]*mesh),
	}, nil
}

// Close releases every mesh and the shader program.
func (r *Renderer) Close() {
	for k, m := range r.meshes {
		m.release()
		delete(r.meshes, k)
	}
	if r.landmark != nil {
		r.landmark.release()
		r.landmark = nil
	}
	if r.prog != nil {
		r.prog.Release()
	}
}

// Resize updates the viewport and projection for a new drawable size.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.updateProj()
}

// SetFogDistance moves the fog horizon and the far plane with it.
func (r *Renderer) SetFogDistance(d float64) {
	if d < 0 {
		d = 0
	}
	r.cfg.FogDistance = d
	r.updateProj()
}

// SetLightPos moves the point light, in world coordinates.
func (r *Renderer) SetLightPos(p math.Vec3) {
	r.cfg.LightPos = p
}

func (r *Renderer) updateProj() {
	if r.width <= 0 || r.height <= 0 {
		return
	}
	aspect := float64(r.width) / float64(r.height)

	// The config carries a horizontal field of view; mgl32 wants the
	// vertical one.
	fovx := r.cfg.FOVDegrees * gomath.Pi / 180.0
	fovy := 2.0 * gomath.Atan(gomath.Tan(fovx*0.5)/aspect)

	far := r.cfg.FogDistance * 1.5
	if far < 100 {
		far = 100
	}
	r.proj = mgl32.Perspective(float32(fovy), float32(aspect), float32(r.cfg.Near), float32(far))
}

// SyncWorld mirrors the world's residency into GPU meshes: removed
// holds the keys the last world Update evicted, and any resident
// chunk without a mesh gets one. The landmark mesh uploads once.
func (r *Renderer) SyncWorld(w *world.World, removed []world.ChunkKey) {
	for _, k := range removed {
		if m, ok := r.meshes[k]; ok {
			m.release()
			delete(r.meshes, k)
		}
	}

	uploaded := 0
	w.ResidentChunks(func(k world.ChunkKey, c *world.Chunk) {
		if _, ok := r.meshes[k]; ok {
			return
		}
		r.meshes[k] = uploadMesh(render.BuildMeshBuffers(c.Faces, r.cfg))
		uploaded++
	})

	if r.landmark == nil {
		r.landmark = uploadMesh(render.BuildMeshBuffers(w.LandmarkFaces(), r.cfg))
	}

	if uploaded > 0 || len(removed) > 0 {
		logger.Debug("chunk meshes synced",
			zap.Int("uploaded", uploaded),
			zap.Int("dropped", len(removed)),
			zap.Int("resident", len(r.meshes)),
		)
	}
}

// Draw clears and renders every resident mesh from cam's viewpoint.
func (r *Renderer) Draw(cam *camera.Camera) {
	u := render.BuildFrameUniforms(cam, r.cfg)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.prog.Use()
	gl.UniformMatrix4fv(r.prog.Uniform("uView"), 1, false, &u.View[0])
	gl.UniformMatrix4fv(r.prog.Uniform("uProj"), 1, false, &r.proj[0])
	gl.Uniform3fv(r.prog.Uniform("uLightPos"), 1, &u.LightPos[0])
	gl.Uniform1f(r.prog.Uniform("uAmbient"), u.Ambient)
	gl.Uniform1f(r.prog.Uniform("uFogDistance"), u.FogDistance)
	gl.Uniform3fv(r.prog.Uniform("uFogColor"), 1, &u.FogColor[0])

	for _, m := range r.meshes {
		m.draw()
	}
	if r.landmark != nil {
		r.landmark.draw()
	}
	gl.BindVertexArray(0)
}

// ReadPixels copies the current framebuffer as tightly packed RGBA,
// bottom row first, for snapshot capture.
func (r *Renderer) ReadPixels() []byte {
	buf := make([]byte, r.width*r.height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height),
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&buf[0]))
	return buf
}

// Size returns the drawable size of the last Resize.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

func uploadMesh(mb render.MeshBuffers) *mesh {
	m := &mesh{count: int32(len(mb.Indices))}
	if m.count == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(3, &m.vbo[0])
	for i, data := range [3][]float32{mb.Positions, mb.Normals, mb.Colors} {
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
		gl.VertexAttribPointer(uint32(i), 3, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mb.Indices)*4,
		unsafe.Pointer(&mb.Indices[0]), gl.STATIC_DRAW)

	// The element binding is VAO state, so unbind the VAO first.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m
}

func (m *mesh) draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

func (m *mesh) release() {
	if m.count == 0 {
		return
	}
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(3, &m.vbo[0])
	gl.DeleteVertexArrays(1, &m.vao)
}
