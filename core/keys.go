package core

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/GerhardSerton/OpenGLPractice/input"
)

// glfwKeyToViewerKey maps GLFW keys to viewer keys.
func glfwKeyToViewerKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyP:
		return input.KeyRotate
	case glfw.KeyS:
		return input.KeyScale
	case glfw.KeyT:
		return input.KeyTranslate
	case glfw.KeyR:
		return input.KeyReset
	case glfw.KeyDown:
		return input.KeyColorBlue
	case glfw.KeyUp:
		return input.KeyColorRed
	case glfw.KeyZ:
		return input.KeyReload
	default:
		return input.KeyNone
	}
}
