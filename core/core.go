package core

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/GerhardSerton/OpenGLPractice/gpu/opengl"
	"github.com/GerhardSerton/OpenGLPractice/input"
)

// Core struct encapsulates the window, its GL context and the keyboard and
// pointer input delivered to it.
type Core struct {
	window *glfw.Window
	device *opengl.Device

	// Window dimensions
	width, height int
	title         string

	// Keys pressed since the last PollEvents.
	pending []input.Key

	// FPS counter state
	fpsFrames         int
	fpsLastUpdateTime time.Time

	shutdown bool
}

// NewCore creates a Core for a width x height window. Nothing is created
// until Init.
func NewCore(width, height int, title string) *Core {
	return &Core{
		width:  width,
		height: height,
		title:  title,
	}
}

// Init initializes GLFW, opens the window with a GL 4.1 core context and
// loads OpenGL. The calling goroutine must stay locked to its OS thread.
func (c *Core) Init() error {
	runtime.LockOSThread() // Crucial for GLFW

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(c.width, c.height, c.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()

	// Present paces the loop to the display refresh.
	glfw.SwapInterval(1)

	device, err := opengl.Init()
	if err != nil {
		c.window.Destroy()
		glfw.Terminate()
		return err
	}
	c.device = device

	c.window.SetKeyCallback(c.keyCallback)
	c.fpsLastUpdateTime = time.Now()

	return nil
}

// Device returns the GL device bound to the window's context.
func (c *Core) Device() *opengl.Device {
	return c.device
}

// ShouldClose reports whether the window system asked the window to close.
func (c *Core) ShouldClose() bool {
	return c.window.ShouldClose()
}

// PollEvents processes window events and returns the keys pressed since the
// previous call. The returned slice is only valid until the next call.
func (c *Core) PollEvents() []input.Key {
	c.pending = c.pending[:0]
	glfw.PollEvents()
	return c.pending
}

// Pointer samples the cursor position in window pixels.
func (c *Core) Pointer() input.Pointer {
	return input.SamplePointer(c.window)
}

// SwapBuffers swaps the front and back buffers to display the rendered frame.
func (c *Core) SwapBuffers() {
	c.window.SwapBuffers()
	c.updateFPS()
}

// updateFPS shows the frame rate in the window title once per second.
func (c *Core) updateFPS() {
	c.fpsFrames++
	if elapsed := time.Since(c.fpsLastUpdateTime); elapsed >= time.Second {
		fps := float64(c.fpsFrames) / elapsed.Seconds()
		c.window.SetTitle(fmt.Sprintf("%s | FPS: %.2f", c.title, fps))
		c.fpsFrames = 0
		c.fpsLastUpdateTime = time.Now()
	}
}

// Shutdown destroys the window and terminates GLFW. Only the first call
// has an effect.
func (c *Core) Shutdown() {
	if c.shutdown {
		return
	}
	c.shutdown = true

	if c.window != nil {
		c.window.Destroy()
	}
	glfw.Terminate()
	log.Println("Window destroyed.")

	runtime.UnlockOSThread()
}

func (c *Core) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if k := glfwKeyToViewerKey(key); k != input.KeyNone {
		c.pending = append(c.pending, k)
	}
}
