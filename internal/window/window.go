package window

import (
	"fmt"
	"log"

	"gllights/internal/config"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its OpenGL context. It must only be used
// from the thread that created it.
type Window struct {
	handle *glfw.Window
	cursor cursorTracker
}

// Create initialises GLFW, opens a window with a 4.1 core context and loads
// the GL function pointers.
func Create(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	handle.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	log.Printf("OpenGL %s, %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	w := &Window{handle: handle}
	w.cursor.sample(handle.GetCursorPos())
	return w, nil
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// SetShouldClose is a no-op once the window has been terminated.
func (w *Window) SetShouldClose(v bool) {
	if w.handle == nil {
		return
	}
	w.handle.SetShouldClose(v)
}

// PollAndPresent swaps buffers, pumps OS events and samples the cursor.
func (w *Window) PollAndPresent() {
	w.handle.SwapBuffers()
	glfw.PollEvents()
	w.cursor.sample(w.handle.GetCursorPos())
}

// ElapsedTime is the number of seconds since GLFW was initialised.
func (w *Window) ElapsedTime() float64 {
	return glfw.GetTime()
}

func (w *Window) IsKeyPressed(key glfw.Key) bool {
	return w.handle.GetKey(key) == glfw.Press
}

func (w *Window) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return w.handle.GetMouseButton(button) == glfw.Press
}

// CursorDelta returns the cursor movement since the previous call.
func (w *Window) CursorDelta() (dx, dy float64) {
	return w.cursor.take()
}

// Size returns the framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.handle.GetFramebufferSize()
}

// AspectRatio is width over height of the framebuffer. A minimised window
// reports 1.
func (w *Window) AspectRatio() float32 {
	return aspectRatio(w.Size())
}

func aspectRatio(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Terminate destroys the window and shuts GLFW down. Calling it again is a no-op.
func (w *Window) Terminate() {
	if w.handle == nil {
		return
	}
	w.handle.Destroy()
	w.handle = nil
	glfw.Terminate()
}
