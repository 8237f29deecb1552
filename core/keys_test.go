package core

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/GerhardSerton/OpenGLPractice/input"
)

func TestGLFWKeyToViewerKey(t *testing.T) {
	cases := map[glfw.Key]input.Key{
		glfw.KeyEscape: input.KeyEscape,
		glfw.KeyP:      input.KeyRotate,
		glfw.KeyS:      input.KeyScale,
		glfw.KeyT:      input.KeyTranslate,
		glfw.KeyR:      input.KeyReset,
		glfw.KeyDown:   input.KeyColorBlue,
		glfw.KeyUp:     input.KeyColorRed,
		glfw.KeyZ:      input.KeyReload,
		glfw.KeyA:      input.KeyNone,
		glfw.KeySpace:  input.KeyNone,
	}
	for key, want := range cases {
		if got := glfwKeyToViewerKey(key); got != want {
			t.Errorf("glfw key %d: expected %d, got %d", key, want, got)
		}
	}
}

func TestKeyCallback_OnlyPressesQueued(t *testing.T) {
	c := NewCore(640, 480, "test")

	c.keyCallback(nil, glfw.KeyS, 0, glfw.Press, 0)
	c.keyCallback(nil, glfw.KeyS, 0, glfw.Repeat, 0)
	c.keyCallback(nil, glfw.KeyS, 0, glfw.Release, 0)
	c.keyCallback(nil, glfw.KeyQ, 0, glfw.Press, 0)
	c.keyCallback(nil, glfw.KeyEscape, 0, glfw.Press, 0)

	want := []input.Key{input.KeyScale, input.KeyEscape}
	if len(c.pending) != len(want) {
		t.Fatalf("Expected %v, got %v", want, c.pending)
	}
	for i := range want {
		if c.pending[i] != want[i] {
			t.Errorf("pending[%d]: expected %d, got %d", i, want[i], c.pending[i])
		}
	}
}
