// Package gputest provides a recording gpu.Device for tests that run
// without a GL context.
package gputest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/GerhardSerton/OpenGLPractice/gpu"
)

// Draw is one recorded DrawTriangles call.
type Draw struct {
	VAO, Buffer uint32
	Count       int32
}

// Device records every call and keeps enough object state to check that
// handles are created and released in pairs.
type Device struct {
	// Calls lists method names in call order.
	Calls []string

	FailCompile map[gpu.ShaderKind]bool
	CompileLog  string
	FailLink    bool
	LinkLog     string
	// ErrorFlag is returned (once) by the next Error call.
	ErrorFlag uint32

	Shaders      map[uint32]gpu.ShaderKind
	Programs     map[uint32]bool
	Buffers      map[uint32][]float32
	VertexArrays map[uint32]bool
	Attached     map[uint32][]uint32
	Deleted      []string

	Matrices map[int32]mgl32.Mat4
	Vectors  map[int32]mgl32.Vec3
	// Uploads lists uniform names in upload order; location -1 uploads are
	// recorded as "-1".
	Uploads []string
	Draws   []Draw

	Used      uint32
	locations map[string]int32
	names     map[int32]string
	next      uint32
}

var _ gpu.Device = (*Device)(nil)

// New returns an empty recording device.
func New() *Device {
	return &Device{
		FailCompile:  map[gpu.ShaderKind]bool{},
		Shaders:      map[uint32]gpu.ShaderKind{},
		Programs:     map[uint32]bool{},
		Buffers:      map[uint32][]float32{},
		VertexArrays: map[uint32]bool{},
		Attached:     map[uint32][]uint32{},
		Matrices:     map[int32]mgl32.Mat4{},
		Vectors:      map[int32]mgl32.Vec3{},
		locations:    map[string]int32{},
		names:        map[int32]string{},
	}
}

func (d *Device) record(name string) { d.Calls = append(d.Calls, name) }

func (d *Device) handle() uint32 {
	d.next++
	return d.next
}

// Location returns the location handed out for a uniform name, or -1.
func (d *Device) Location(name string) int32 {
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	return -1
}

// Matrix returns the last matrix uploaded to the named uniform.
func (d *Device) Matrix(name string) (mgl32.Mat4, bool) {
	m, ok := d.Matrices[d.Location(name)]
	return m, ok
}

// Vector returns the last vec3 uploaded to the named uniform.
func (d *Device) Vector(name string) (mgl32.Vec3, bool) {
	v, ok := d.Vectors[d.Location(name)]
	return v, ok
}

// Reset forgets recorded calls, uploads, draws and deletions but keeps
// object state.
func (d *Device) Reset() {
	d.Calls = nil
	d.Uploads = nil
	d.Draws = nil
	d.Deleted = nil
}

func (d *Device) CreateShader(kind gpu.ShaderKind) uint32 {
	d.record("CreateShader")
	h := d.handle()
	d.Shaders[h] = kind
	return h
}

func (d *Device) ShaderSource(shader uint32, source string) { d.record("ShaderSource") }

func (d *Device) CompileShader(shader uint32) { d.record("CompileShader") }

func (d *Device) ShaderCompiled(shader uint32) bool {
	d.record("ShaderCompiled")
	return !d.FailCompile[d.Shaders[shader]]
}

func (d *Device) ShaderInfoLog(shader uint32, max int) string {
	d.record("ShaderInfoLog")
	return bound(d.CompileLog, max)
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader")
	if _, ok := d.Shaders[shader]; !ok {
		panic(fmt.Sprintf("gputest: DeleteShader(%d) on unknown shader", shader))
	}
	delete(d.Shaders, shader)
	d.Deleted = append(d.Deleted, fmt.Sprintf("shader:%d", shader))
}

func (d *Device) CreateProgram() uint32 {
	d.record("CreateProgram")
	h := d.handle()
	d.Programs[h] = false
	return h
}

func (d *Device) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.Attached[program] = append(d.Attached[program], shader)
}

func (d *Device) LinkProgram(program uint32) {
	d.record("LinkProgram")
	d.Programs[program] = !d.FailLink
}

func (d *Device) ProgramLinked(program uint32) bool {
	d.record("ProgramLinked")
	return d.Programs[program]
}

func (d *Device) ProgramInfoLog(program uint32, max int) string {
	d.record("ProgramInfoLog")
	return bound(d.LinkLog, max)
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram")
	d.Used = program
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram")
	if _, ok := d.Programs[program]; !ok {
		panic(fmt.Sprintf("gputest: DeleteProgram(%d) on unknown program", program))
	}
	delete(d.Programs, program)
	d.Deleted = append(d.Deleted, fmt.Sprintf("program:%d", program))
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation")
	if program == 0 || !d.Programs[program] {
		return -1
	}
	if loc, ok := d.locations[name]; ok {
		return loc
	}
	loc := int32(len(d.locations))
	d.locations[name] = loc
	d.names[loc] = name
	return loc
}

func (d *Device) uploadName(location int32) string {
	if location < 0 {
		return "-1"
	}
	return d.names[location]
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	d.record("UniformMatrix4")
	d.Uploads = append(d.Uploads, d.uploadName(location))
	if location >= 0 {
		d.Matrices[location] = m
	}
}

func (d *Device) Uniform3(location int32, v mgl32.Vec3) {
	d.record("Uniform3")
	d.Uploads = append(d.Uploads, d.uploadName(location))
	if location >= 0 {
		d.Vectors[location] = v
	}
}

func (d *Device) Setup() { d.record("Setup") }

func (d *Device) Clear() { d.record("Clear") }

func (d *Device) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	h := d.handle()
	d.VertexArrays[h] = true
	return h
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray")
	if !d.VertexArrays[vao] {
		panic(fmt.Sprintf("gputest: DeleteVertexArray(%d) on unknown vertex array", vao))
	}
	delete(d.VertexArrays, vao)
	d.Deleted = append(d.Deleted, fmt.Sprintf("vao:%d", vao))
}

func (d *Device) GenBuffer() uint32 {
	d.record("GenBuffer")
	h := d.handle()
	d.Buffers[h] = nil
	return h
}

func (d *Device) DeleteBuffer(buffer uint32) {
	d.record("DeleteBuffer")
	if _, ok := d.Buffers[buffer]; !ok {
		panic(fmt.Sprintf("gputest: DeleteBuffer(%d) on unknown buffer", buffer))
	}
	delete(d.Buffers, buffer)
	d.Deleted = append(d.Deleted, fmt.Sprintf("buffer:%d", buffer))
}

func (d *Device) BufferData(buffer uint32, data []float32) {
	d.record("BufferData")
	d.Buffers[buffer] = append([]float32(nil), data...)
}

func (d *Device) DrawTriangles(vao, buffer uint32, count int32) {
	d.record("DrawTriangles")
	d.Draws = append(d.Draws, Draw{VAO: vao, Buffer: buffer, Count: count})
}

func (d *Device) Error() uint32 {
	d.record("Error")
	code := d.ErrorFlag
	d.ErrorFlag = gpu.NoError
	return code
}

func bound(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
