package main

import (
	"log"
	"runtime"

	"github.com/GerhardSerton/OpenGLPractice/core"
	"github.com/GerhardSerton/OpenGLPractice/input"
	"github.com/GerhardSerton/OpenGLPractice/mesh"
	"github.com/GerhardSerton/OpenGLPractice/render"
	"github.com/GerhardSerton/OpenGLPractice/shader"
	"github.com/GerhardSerton/OpenGLPractice/transform"
)

// Window and asset configuration. Paths are relative to the working
// directory the viewer is started from.
const (
	screenWidth  = 640
	screenHeight = 480
	windowTitle  = "OpenGL Prac 1"

	vertexShaderPath   = "assets/simple.vert"
	fragmentShaderPath = "assets/simple.frag"
	meshPath           = "assets/cube.obj"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	coreLib := core.NewCore(screenWidth, screenHeight, windowTitle)
	if err := coreLib.Init(); err != nil {
		log.Fatalf("Core library initialization failed: %v", err)
	}
	defer coreLib.Shutdown()

	dev := coreLib.Device()

	// A broken shader is not fatal: the loop keeps running and draws nothing.
	program, err := shader.NewBuilder(dev).Build(vertexShaderPath, fragmentShaderPath)
	if err != nil {
		log.Printf("Shader program unavailable: %v", err)
	}

	model, err := mesh.Load(meshPath)
	if err != nil {
		program.Destroy()
		coreLib.Shutdown()
		log.Fatalf("Failed to load mesh: %v", err)
	}

	renderer := render.New(dev, program, coreLib, model)
	defer renderer.Close()

	state := transform.New()
	router := input.NewRouter(state)

	log.Println("Viewer initialized. Starting main loop...")

	for !coreLib.ShouldClose() {
		quit, reload := router.Drain(coreLib.PollEvents())
		if quit {
			break
		}
		if reload {
			if m, err := mesh.Load(meshPath); err != nil {
				log.Printf("Reload failed, keeping current mesh: %v", err)
			} else {
				renderer.Reload(m)
				state.MarkDirty(transform.AllUniforms)
			}
		}

		renderer.Frame(state, coreLib.Pointer())
	}

	log.Println("Viewer shutting down.")
}
