package lit

import (
	"gllights/internal/graphics"
	renderer "gllights/internal/graphics/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// Shading holds the per-vertex lighting terms. Diffuse always has weight 1.
type Shading struct {
	Ambient   float32
	Specular  float32
	Shininess float32
}

// Lit draws an object with the Gouraud shader: ambient, diffuse and specular
// light is computed per vertex and modulates the texture per fragment.
type Lit struct {
	object       graphics.Object
	vertexPath   string
	fragmentPath string
	shading      Shading

	program *graphics.Program
	model   mgl32.Mat4
}

// NewLit creates a lit renderable placed at the world origin
func NewLit(object graphics.Object, vertexPath, fragmentPath string, shading Shading) *Lit {
	return &Lit{
		object:       object,
		vertexPath:   vertexPath,
		fragmentPath: fragmentPath,
		shading:      shading,
		model:        mgl32.Ident4(),
	}
}

func (l *Lit) Init() error {
	p, err := graphics.LoadProgram("lit", l.vertexPath, l.fragmentPath)
	if err != nil {
		return err
	}
	l.program = p
	return nil
}

func (l *Lit) Render(ctx renderer.RenderContext) {
	l.program.Bind()
	l.program.SetMat4("projMatrix", ctx.Proj)
	l.program.SetMat4("camMatrix", ctx.View)
	l.program.SetMat4("modelMatrix", l.model)
	l.program.SetVec3("lightColour", ctx.Light.Colour)
	l.program.SetVec3("lightPos", ctx.Light.Position)
	l.program.SetFloat("ambientStrength", l.shading.Ambient)
	l.program.SetFloat("specularStrength", l.shading.Specular)
	l.program.SetFloat("shininess", l.shading.Shininess)
	l.object.Draw(l.program)
}

func (l *Lit) Dispose() {
	if l.program != nil {
		l.program.Delete()
		l.program = nil
	}
}
