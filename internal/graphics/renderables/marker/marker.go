package marker

import (
	"gllights/internal/graphics"
	renderer "gllights/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Marker draws a small unlit copy of an object at the light's position.
type Marker struct {
	object       graphics.Object
	vertexPath   string
	fragmentPath string
	scale        float32

	program *graphics.Program
}

func NewMarker(object graphics.Object, vertexPath, fragmentPath string, scale float32) *Marker {
	return &Marker{
		object:       object,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		scale:        scale,
	}
}

func (m *Marker) Init() error {
	p, err := graphics.LoadProgram("light-source", m.vertexPath, m.fragmentPath)
	if err != nil {
		return err
	}
	m.program = p
	return nil
}

// ModelMatrix translates to pos and then scales uniformly.
func ModelMatrix(pos mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(mgl32.Scale3D(scale, scale, scale))
}

func (m *Marker) Render(ctx renderer.RenderContext) {
	m.program.Bind()
	m.program.SetMat4("projMatrix", ctx.Proj)
	m.program.SetMat4("camMatrix", ctx.View)
	m.program.SetMat4("modelMatrix", ModelMatrix(ctx.Light.Position, m.scale))
	m.program.SetVec3("lightColour", ctx.Light.Colour)
	m.object.Draw(m.program)
}

func (m *Marker) Dispose() {
	if m.program != nil {
		m.program.Delete()
		m.program = nil
	}
}
