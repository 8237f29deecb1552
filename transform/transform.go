// Package transform holds the viewer's interaction state: the active mode
// and the matrices placing the single object on screen.
package transform

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Baseline camera, restored by Reset.
const (
	FieldOfView = 35.0
	AspectRatio = float32(640) / float32(480)
	NearPlane   = 0.1
	FarPlane    = 100.0

	// PixelsPerUnit converts pointer pixels to scale factors and offsets.
	PixelsPerUnit = 100.0
)

var (
	Eye    = mgl32.Vec3{4, 3, 3}
	Target = mgl32.Vec3{0, 0, 0}
	Up     = mgl32.Vec3{0, 1, 0}

	Blue = mgl32.Vec3{0, 0, 1}
	Red  = mgl32.Vec3{1, 0, 0}
)

// Mode selects which transform the pointer drives.
type Mode int

const (
	Rotate Mode = iota
	Scale
	Translate
)

func (m Mode) String() string {
	switch m {
	case Rotate:
		return "rotate"
	case Scale:
		return "scale"
	case Translate:
		return "translate"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type updateFunc func(s *State, x, y float32)

// updaters maps each mode to the matrices it owns. A mode never touches
// another mode's matrices.
var updaters = map[Mode]updateFunc{
	Rotate:    (*State).rotate,
	Scale:     (*State).scale,
	Translate: (*State).translate,
}

// State is the object placement plus the interaction mode. It is owned by
// the render thread and not safe for concurrent use.
type State struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4

	Rotation           mgl32.Mat4
	Scale              mgl32.Mat4
	Translation        mgl32.Mat4
	NegatedTranslation mgl32.Mat4

	Mode  Mode
	Color mgl32.Vec3

	dirty Uniform
}

// New returns the startup state: baseline matrices, Rotate mode, blue, and
// every uniform pending upload.
func New() *State {
	s := &State{Mode: Rotate}
	s.Reset()
	s.SetColor(Blue)
	return s
}

// SetMode switches the active mode. Matrices of the previous mode keep
// their last values.
func (s *State) SetMode(m Mode) {
	if _, ok := updaters[m]; !ok {
		return
	}
	s.Mode = m
}

// Update recomputes the active mode's matrices from the pointer position in
// window pixels. The result depends only on (x, y), never on earlier frames.
func (s *State) Update(x, y float32) {
	if update, ok := updaters[s.Mode]; ok {
		update(s, x, y)
	}
}

func (s *State) rotate(x, y float32) {
	z := mgl32.HomogRotate3DZ(mgl32.DegToRad(x))
	s.Rotation = z.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(y)))
	s.dirty |= UniformRotation
}

func (s *State) scale(x, _ float32) {
	f := x / PixelsPerUnit
	s.Scale = mgl32.Scale3D(f, f, f)
	s.dirty |= UniformScale
}

func (s *State) translate(x, y float32) {
	tx, ty := x/PixelsPerUnit, y/PixelsPerUnit
	s.Translation = mgl32.Translate3D(tx, ty, 0)
	s.NegatedTranslation = mgl32.Translate3D(-tx, -ty, 0)
	s.dirty |= UniformTranslation | UniformNegaTranslate
}

// Reset restores every matrix to the baseline. Mode and Color are kept.
func (s *State) Reset() {
	s.Projection = mgl32.Perspective(mgl32.DegToRad(FieldOfView), AspectRatio, NearPlane, FarPlane)
	s.View = mgl32.LookAtV(Eye, Target, Up)
	s.Model = mgl32.Ident4()
	s.Rotation = mgl32.Ident4()
	s.Scale = mgl32.Ident4()
	s.Translation = mgl32.Ident4()
	s.NegatedTranslation = mgl32.Ident4()
	s.dirty |= AllMatrices
}

// SetColor assigns the object color.
func (s *State) SetColor(c mgl32.Vec3) {
	s.Color = c
	s.dirty |= UniformObjectColour
}

// Matrix returns the value of a single matrix uniform.
func (s *State) Matrix(u Uniform) mgl32.Mat4 {
	switch u {
	case UniformProjection:
		return s.Projection
	case UniformView:
		return s.View
	case UniformModel:
		return s.Model
	case UniformScale:
		return s.Scale
	case UniformRotation:
		return s.Rotation
	case UniformTranslation:
		return s.Translation
	case UniformNegaTranslate:
		return s.NegatedTranslation
	}
	return mgl32.Ident4()
}

// Dirty returns the uniforms changed since the last ClearDirty.
func (s *State) Dirty() Uniform {
	return s.dirty
}

// MarkDirty queues uniforms for upload on the next frame.
func (s *State) MarkDirty(u Uniform) {
	s.dirty |= u
}

// ClearDirty marks every uniform as uploaded.
func (s *State) ClearDirty() {
	s.dirty = 0
}
