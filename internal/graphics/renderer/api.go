package renderer

import (
	"gllights/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides the per-frame state shared by all renderables
type RenderContext struct {
	View  mgl32.Mat4
	Proj  mgl32.Mat4
	Light *scene.Light
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
