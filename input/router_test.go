package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/GerhardSerton/OpenGLPractice/transform"
)

type fakeCursor struct{ x, y float64 }

func (c fakeCursor) GetCursorPos() (float64, float64) { return c.x, c.y }

func TestRouter_ModeKeys(t *testing.T) {
	s := transform.New()
	r := NewRouter(s)

	cases := []struct {
		key  Key
		mode transform.Mode
	}{
		{KeyScale, transform.Scale},
		{KeyTranslate, transform.Translate},
		{KeyRotate, transform.Rotate},
		{KeyTranslate, transform.Translate},
		{KeyScale, transform.Scale},
	}
	for _, c := range cases {
		if got := r.Handle(c.key); got != ActionMode {
			t.Errorf("key %d: expected mode action, got %v", c.key, got)
		}
		if s.Mode != c.mode {
			t.Errorf("key %d: expected mode %v, got %v", c.key, c.mode, s.Mode)
		}
	}
}

func TestRouter_ResetKeepsModeAndColor(t *testing.T) {
	s := transform.New()
	r := NewRouter(s)
	r.Handle(KeyColorRed)
	r.Handle(KeyScale)
	s.Update(300, 0)

	if got := r.Handle(KeyReset); got != ActionReset {
		t.Fatalf("Expected reset action, got %v", got)
	}
	if s.Scale != mgl32.Ident4() {
		t.Errorf("Expected identity scale after reset, got %v", s.Scale)
	}
	if s.Mode != transform.Scale {
		t.Errorf("Expected mode scale kept, got %v", s.Mode)
	}
	if s.Color != transform.Red {
		t.Errorf("Expected red kept, got %v", s.Color)
	}
}

func TestRouter_ColorKeys(t *testing.T) {
	s := transform.New()
	r := NewRouter(s)

	if got := r.Handle(KeyColorRed); got != ActionColor {
		t.Errorf("Expected color action, got %v", got)
	}
	if s.Color != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Expected red, got %v", s.Color)
	}
	r.Handle(KeyColorBlue)
	if s.Color != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected blue, got %v", s.Color)
	}
	if s.Mode != transform.Rotate {
		t.Errorf("Expected color keys not to touch mode, got %v", s.Mode)
	}
}

func TestRouter_QuitAndReloadLeftToCaller(t *testing.T) {
	s := transform.New()
	r := NewRouter(s)
	before := *s

	if got := r.Handle(KeyEscape); got != ActionQuit {
		t.Errorf("Expected quit, got %v", got)
	}
	if got := r.Handle(KeyReload); got != ActionReload {
		t.Errorf("Expected reload, got %v", got)
	}
	if got := r.Handle(KeyNone); got != ActionNone {
		t.Errorf("Expected none, got %v", got)
	}
	if *s != before {
		t.Error("Expected quit, reload and unknown keys to leave the state alone")
	}
}

func TestRouter_Drain(t *testing.T) {
	s := transform.New()
	r := NewRouter(s)

	quit, reload := r.Drain([]Key{KeyTranslate, KeyReload, KeyColorRed})
	if quit || !reload {
		t.Errorf("Expected reload only, got quit=%v reload=%v", quit, reload)
	}
	if s.Mode != transform.Translate || s.Color != transform.Red {
		t.Errorf("Expected every event applied in order, got mode=%v color=%v", s.Mode, s.Color)
	}

	quit, reload = r.Drain(nil)
	if quit || reload {
		t.Error("Expected no backlog from the previous frame")
	}

	quit, _ = r.Drain([]Key{KeyRotate, KeyEscape})
	if !quit {
		t.Error("Expected escape to request quit")
	}
}

func TestSamplePointer_TruncatesToPixels(t *testing.T) {
	p := SamplePointer(fakeCursor{x: 90.9, y: 45.2})
	if p != (Pointer{X: 90, Y: 45}) {
		t.Errorf("Expected (90, 45), got %+v", p)
	}
}

func TestEndToEnd_RotateFromStartup(t *testing.T) {
	s := transform.New()
	p := SamplePointer(fakeCursor{})
	s.Update(float32(p.X), float32(p.Y))
	if s.Rotation != mgl32.Ident4() {
		t.Errorf("Expected identity rotation at startup pointer, got %v", s.Rotation)
	}

	p = SamplePointer(fakeCursor{x: 90, y: 45})
	s.Update(float32(p.X), float32(p.Y))
	want := mgl32.HomogRotate3DZ(mgl32.DegToRad(90)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45)))
	if s.Rotation != want {
		t.Errorf("Expected Rz(90)*Ry(45), got %v", s.Rotation)
	}
	if s.Scale != mgl32.Ident4() || s.Translation != mgl32.Ident4() {
		t.Error("Expected scale and translation to stay identity")
	}
}
