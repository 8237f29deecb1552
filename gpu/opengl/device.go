// Package opengl implements gpu.Device with go-gl on an OpenGL 4.1 core context.
package opengl

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/GerhardSerton/OpenGLPractice/gpu"
)

// Device issues gpu.Device calls against the current GL context.
type Device struct{}

var _ gpu.Device = (*Device)(nil)

// Init loads the GL function pointers for the current context and logs the
// driver it got. The context must already be current on this thread.
func Init() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	// gl.Init may leave a stale flag behind.
	gl.GetError()

	var major, minor int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	gl.GetIntegerv(gl.MINOR_VERSION, &minor)
	log.Printf("Loaded OpenGL %d.%d with:", major, minor)
	log.Printf("\tVendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("\tRenderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("\tVersion: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("\tGLSL Version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Device{}, nil
}

func shaderType(kind gpu.ShaderKind) uint32 {
	if kind == gpu.FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *Device) CreateShader(kind gpu.ShaderKind) uint32 {
	return gl.CreateShader(shaderType(kind))
}

// ShaderSource is a helper to correctly pass GLSL source to OpenGL.
func (d *Device) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (d *Device) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (d *Device) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLog(shader uint32, max int) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	n := boundLog(logLength, max)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n)
	gl.GetShaderInfoLog(shader, int32(n), nil, &buf[0])
	return trimLog(buf)
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (d *Device) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLog(program uint32, max int) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	n := boundLog(logLength, max)
	if n == 0 {
		return ""
	}
	buf := make([]uint8, n)
	gl.GetProgramInfoLog(program, int32(n), nil, &buf[0])
	return trimLog(buf)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	if program == 0 {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) Uniform3(location int32, v mgl32.Vec3) {
	gl.Uniform3f(location, v[0], v[1], v[2])
}

func (d *Device) Setup() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0, 0, 0, 1)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (d *Device) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (d *Device) BufferData(buffer uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

func (d *Device) DrawTriangles(vao, buffer uint32, count int32) {
	gl.BindVertexArray(vao)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 0, 0)
	gl.DrawArrays(gl.TRIANGLES, 0, count)
	gl.DisableVertexAttribArray(0)
}

func (d *Device) Error() uint32 {
	return gl.GetError()
}

func boundLog(length int32, max int) int {
	n := int(length)
	if n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	return n
}

func trimLog(buf []uint8) string {
	return strings.TrimRight(string(buf), "\x00")
}
