package graphics

import "github.com/go-gl/mathgl/mgl32"

// SamplerUniform is the sampler every program reads its material texture from.
const SamplerUniform = "main2D"

// Material is a base colour tint plus a texture.
type Material struct {
	Tint    mgl32.Vec3
	Texture Texture
}

// Object pairs shared geometry with a material. It is a value and is never
// mutated after construction.
type Object struct {
	Geometry Geometry
	Material Material
}

func NewObject(g Geometry, m Material) Object {
	return Object{Geometry: g, Material: m}
}

// Draw binds the material texture to unit 0, points the program's sampler at
// it and draws the geometry. The program must already be bound.
func (o Object) Draw(p *Program) {
	o.Material.Texture.Bind(0)
	p.SetInt(SamplerUniform, 0)
	p.SetVec3("tint", o.Material.Tint)
	o.Geometry.Draw()
}
