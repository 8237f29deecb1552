// Package render owns the GPU resources of the single viewed object and
// draws it once per frame.
package render

import (
	"log"

	"github.com/GerhardSerton/OpenGLPractice/gpu"
	"github.com/GerhardSerton/OpenGLPractice/input"
	"github.com/GerhardSerton/OpenGLPractice/mesh"
	"github.com/GerhardSerton/OpenGLPractice/shader"
	"github.com/GerhardSerton/OpenGLPractice/transform"
)

// Presenter shows the finished frame. With a swap interval of 1 it blocks
// until the next vertical blank, which paces the loop. *glfw.Window
// satisfies it.
type Presenter interface {
	SwapBuffers()
}

// Renderer holds the program, vertex array and vertex buffer used to draw
// the mesh. It must only be used from the thread owning the GL context.
type Renderer struct {
	dev     gpu.Device
	program *shader.Program
	present Presenter

	vao         uint32
	vbo         uint32
	vertexCount int32

	locations map[transform.Uniform]int32
	closed    bool
}

// New sets up the pipeline state, resolves the uniform locations of program
// and uploads the mesh positions. An invalid program is accepted: frames
// still run, they just draw nothing useful.
func New(dev gpu.Device, program *shader.Program, present Presenter, m *mesh.Mesh) *Renderer {
	r := &Renderer{
		dev:       dev,
		program:   program,
		present:   present,
		locations: make(map[transform.Uniform]int32, len(transform.Uniforms)),
	}

	dev.Setup()
	r.vao = dev.GenVertexArray()

	dev.UseProgram(program.ID)
	for _, u := range transform.Uniforms {
		r.locations[u] = dev.UniformLocation(program.ID, u.Name())
	}
	if !program.Valid() {
		log.Println("Warning: rendering with an unlinked shader program")
	}

	r.vbo = dev.GenBuffer()
	r.upload(m)

	gpu.CheckError(dev, "Setup complete", true)
	return r
}

// VertexCount is the number of vertices drawn each frame.
func (r *Renderer) VertexCount() int32 {
	return r.vertexCount
}

// Frame draws one frame: clear, recompute the active mode's transform from
// the pointer, upload the uniforms that changed, draw, present.
func (r *Renderer) Frame(s *transform.State, p input.Pointer) {
	r.dev.Clear()

	s.Update(float32(p.X), float32(p.Y))
	r.uploadUniforms(s)

	r.dev.DrawTriangles(r.vao, r.vbo, r.vertexCount)

	r.present.SwapBuffers()
}

func (r *Renderer) uploadUniforms(s *transform.State) {
	dirty := s.Dirty()
	for _, u := range transform.Uniforms {
		if !dirty.Has(u) {
			continue
		}
		loc := r.locations[u]
		if loc < 0 {
			continue
		}
		if u.IsMatrix() {
			r.dev.UniformMatrix4(loc, s.Matrix(u))
		} else {
			r.dev.Uniform3(loc, s.Color)
		}
	}
	s.ClearDirty()
}

// Reload replaces the vertex buffer contents with m.
//
// TODO: decide whether reload should also upload a duplicate copy of the
// vertices offset by +1 (DESIGN.md, open questions). Until then a single
// copy is uploaded.
func (r *Renderer) Reload(m *mesh.Mesh) {
	r.upload(m)
	gpu.CheckError(r.dev, "Reload", false)
	log.Printf("Reloaded mesh: %d vertices", r.vertexCount)
}

func (r *Renderer) upload(m *mesh.Mesh) {
	data := make([]float32, len(m.Positions))
	copy(data, m.Positions)
	r.dev.BufferData(r.vbo, data)
	r.vertexCount = int32(m.VertexCount)
}

// Close releases the buffer, the vertex array and the program. Only the
// first call has an effect.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.dev.DeleteBuffer(r.vbo)
	r.dev.DeleteVertexArray(r.vao)
	r.program.Destroy()
}
