package renderer

import (
	"fmt"

	"gllights/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
}

// NewRenderer configures global GL state and initialises every renderable in
// order. If one fails, the ones already initialised are disposed.
func NewRenderer(clearColour mgl32.Vec3, rs ...Renderable) (*Renderer, error) {
	gl.ClearColor(clearColour[0], clearColour[1], clearColour[2], 1.0)
	gl.Enable(gl.DEPTH_TEST)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	return &Renderer{renderables: rs}, nil
}

// SetViewport resizes the GL viewport
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the colour and depth buffers
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws every renderable in registration order. GL state is not
// diffed between renderables; each binds what it needs.
func (r *Renderer) Render(ctx RenderContext) {
	defer profiling.Track("frame.render")()
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}
