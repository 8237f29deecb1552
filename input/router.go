// Package input routes discrete key events to the transform state and hands
// the per-frame pointer sample to the active mode.
package input

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/GerhardSerton/OpenGLPractice/transform"
)

// Key is a window-system independent key the viewer reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyRotate    // P
	KeyScale     // S
	KeyTranslate // T
	KeyReset     // R
	KeyColorBlue // Down arrow
	KeyColorRed  // Up arrow
	KeyReload    // Z
)

// Action tells the caller what a key did.
type Action int

const (
	ActionNone Action = iota
	ActionMode
	ActionReset
	ActionColor
	ActionReload
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionMode:
		return "mode"
	case ActionReset:
		return "reset"
	case ActionColor:
		return "color"
	case ActionReload:
		return "reload"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Pointer is the absolute cursor position in window pixels.
type Pointer struct {
	X, Y int
}

var modeKeys = map[Key]transform.Mode{
	KeyRotate:    transform.Rotate,
	KeyScale:     transform.Scale,
	KeyTranslate: transform.Translate,
}

var colorKeys = map[Key]mgl32.Vec3{
	KeyColorBlue: transform.Blue,
	KeyColorRed:  transform.Red,
}

// Router applies key events to a transform state.
type Router struct {
	state *transform.State
}

// NewRouter returns a Router driving state.
func NewRouter(state *transform.State) *Router {
	return &Router{state: state}
}

// Handle applies one key-down event. Mode, reset and color keys change the
// state directly; reload and quit are left to the caller.
func (r *Router) Handle(k Key) Action {
	if k == KeyEscape {
		return ActionQuit
	}
	if mode, ok := modeKeys[k]; ok {
		if r.state.Mode != mode {
			log.Printf("Mode: %v", mode)
		}
		r.state.SetMode(mode)
		return ActionMode
	}
	if c, ok := colorKeys[k]; ok {
		r.state.SetColor(c)
		return ActionColor
	}
	switch k {
	case KeyReset:
		r.state.Reset()
		return ActionReset
	case KeyReload:
		return ActionReload
	}
	return ActionNone
}

// Drain handles the events delivered since the last frame, in order, and
// reports whether any of them asked to quit or reload. Nothing is carried
// over to the next frame.
func (r *Router) Drain(keys []Key) (quit, reload bool) {
	for _, k := range keys {
		switch r.Handle(k) {
		case ActionQuit:
			quit = true
		case ActionReload:
			reload = true
		}
	}
	return quit, reload
}

// PointerSource reports the cursor position relative to the window's
// top-left corner. *glfw.Window satisfies it.
type PointerSource interface {
	GetCursorPos() (x, y float64)
}

// SamplePointer reads the cursor afresh, truncated to whole pixels.
func SamplePointer(src PointerSource) Pointer {
	x, y := src.GetCursorPos()
	return Pointer{X: int(x), Y: int(y)}
}
