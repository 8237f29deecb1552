// Package gpu describes the graphics calls the viewer issues each frame.
// The opengl subpackage implements them on top of an OpenGL 4.1 core context.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// ShaderKind selects the pipeline stage a shader object is compiled for.
type ShaderKind int

const (
	VertexShader ShaderKind = iota
	FragmentShader
)

func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the synchronous GPU command surface used by the shader builder
// and the renderer. Every call is issued from the thread owning the context.
//
// Handles are plain GL object names; 0 is never a valid object.
type Device interface {
	CreateShader(kind ShaderKind) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	// ShaderInfoLog returns at most max bytes of the shader's info log.
	ShaderInfoLog(shader uint32, max int) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	// ProgramInfoLog returns at most max bytes of the program's info log.
	ProgramInfoLog(program uint32, max int) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 when the name is not an active uniform.
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform3(location int32, v mgl32.Vec3)

	// Setup sets the fixed pipeline state: depth test, back-face culling
	// and an opaque black clear color.
	Setup()
	Clear()

	GenVertexArray() uint32
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	// BufferData replaces the contents of buffer with data (static draw).
	BufferData(buffer uint32, data []float32)
	// DrawTriangles draws count vertices from buffer, attribute 0 holding
	// three floats per vertex.
	DrawTriangles(vao, buffer uint32, count int32)

	// Error returns and clears the current error flag.
	Error() uint32
}
