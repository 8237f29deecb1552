// Package core owns the GLFW window and OpenGL context the viewer draws
// into, and turns window-system input into viewer keys and pointer samples.
package core
