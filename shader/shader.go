// Package shader compiles and links vertex/fragment shader pairs.
//
// Failures never panic and never stop the caller: a failed stage comes back
// as the invalid handle 0 and a failed link as a Program with ID 0, each
// alongside a typed error carrying the driver diagnostics.
package shader

import (
	"fmt"
	"log"
	"os"

	"github.com/GerhardSerton/OpenGLPractice/gpu"
)

// MaxLogLength bounds the diagnostic text captured from the driver.
const MaxLogLength = 1024

// ResourceOpenError reports a shader source file that could not be read.
type ResourceOpenError struct {
	Path string
	Err  error
}

func (e *ResourceOpenError) Error() string {
	return fmt.Sprintf("could not open shader file %s: %v", e.Path, e.Err)
}

func (e *ResourceOpenError) Unwrap() error { return e.Err }

// CompileError reports a stage the driver refused to compile.
type CompileError struct {
	Kind gpu.ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader:\n%v", e.Kind, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program:\n%v", e.Log)
}

// Program is a linked (or failed) shader program owned by the caller.
type Program struct {
	ID     uint32
	Linked bool
	// Log holds the link diagnostics; empty after a clean link.
	Log string

	dev gpu.Device
}

// Valid reports whether the program can be used for drawing.
func (p *Program) Valid() bool {
	return p != nil && p.Linked && p.ID != 0
}

// Destroy releases the program object. Calling it again, or on an invalid
// program, does nothing.
func (p *Program) Destroy() {
	if p == nil || p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
	p.Linked = false
}

// Builder turns shader sources into programs on a device.
type Builder struct {
	dev gpu.Device
}

// NewBuilder returns a Builder issuing its calls on dev.
func NewBuilder(dev gpu.Device) *Builder {
	return &Builder{dev: dev}
}

// LoadStage reads path and compiles it as a kind stage. A missing file
// yields 0 and a *ResourceOpenError.
func (b *Builder) LoadStage(path string, kind gpu.ShaderKind) (uint32, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return 0, &ResourceOpenError{Path: path, Err: err}
	}
	return b.Compile(string(source), kind)
}

// Compile compiles source as a kind stage. On failure the stage object is
// released and 0 is returned with a *CompileError.
func (b *Builder) Compile(source string, kind gpu.ShaderKind) (uint32, error) {
	stage := b.dev.CreateShader(kind)
	if stage == 0 {
		return 0, &CompileError{Kind: kind, Log: "driver returned no shader object"}
	}
	b.dev.ShaderSource(stage, source)
	b.dev.CompileShader(stage)
	if !b.dev.ShaderCompiled(stage) {
		msg := b.dev.ShaderInfoLog(stage, MaxLogLength)
		b.dev.DeleteShader(stage)
		if msg == "" {
			msg = "no diagnostic available"
		}
		return 0, &CompileError{Kind: kind, Log: msg}
	}
	return stage, nil
}

// Link attaches both stages to a new program and links it. Both stages are
// released once the attempt is over, whatever its outcome. A failed link
// returns a Program with ID 0, Linked false and a non-empty Log, together
// with a *LinkError.
func (b *Builder) Link(vertex, fragment uint32) (*Program, error) {
	defer b.release(vertex)
	defer b.release(fragment)

	if vertex == 0 || fragment == 0 {
		msg := missingStages(vertex, fragment)
		log.Printf("Shader load error: %s", msg)
		return &Program{dev: b.dev, Log: msg}, &LinkError{Log: msg}
	}

	id := b.dev.CreateProgram()
	b.dev.AttachShader(id, vertex)
	b.dev.AttachShader(id, fragment)
	b.dev.LinkProgram(id)

	if !b.dev.ProgramLinked(id) {
		msg := b.dev.ProgramInfoLog(id, MaxLogLength)
		if msg == "" {
			msg = "link failed with no diagnostic"
		}
		log.Printf("Shader load error: %s", msg)
		b.dev.DeleteProgram(id)
		return &Program{dev: b.dev, Log: msg}, &LinkError{Log: msg}
	}

	return &Program{ID: id, Linked: true, dev: b.dev}, nil
}

// Build loads, compiles and links the pair at vertexPath and fragmentPath.
// The returned Program is never nil; check Valid or the error.
func (b *Builder) Build(vertexPath, fragmentPath string) (*Program, error) {
	vertex, verr := b.LoadStage(vertexPath, gpu.VertexShader)
	if verr != nil {
		log.Printf("Vertex stage %s: %v", vertexPath, verr)
	}
	fragment, ferr := b.LoadStage(fragmentPath, gpu.FragmentShader)
	if ferr != nil {
		log.Printf("Fragment stage %s: %v", fragmentPath, ferr)
	}

	prog, err := b.Link(vertex, fragment)
	if err != nil {
		if verr != nil {
			return prog, fmt.Errorf("%w (vertex: %v)", err, verr)
		}
		if ferr != nil {
			return prog, fmt.Errorf("%w (fragment: %v)", err, ferr)
		}
		return prog, err
	}
	return prog, nil
}

func (b *Builder) release(stage uint32) {
	if stage != 0 {
		b.dev.DeleteShader(stage)
	}
}

func missingStages(vertex, fragment uint32) string {
	switch {
	case vertex == 0 && fragment == 0:
		return "vertex and fragment stages are invalid"
	case vertex == 0:
		return "vertex stage is invalid"
	default:
		return "fragment stage is invalid"
	}
}
