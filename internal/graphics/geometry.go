package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

const (
	floatSize = 4

	// position xyz, normal xyz, uv
	cubeStride      = 8
	CubeVertexCount = 36
)

// cubeVertices is a unit cube centred at the origin, two counter-clockwise
// triangles per face.
var cubeVertices = []float32{
	// back (-z)
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	// front (+z)
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	// left (-x)
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	// right (+x)
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	// bottom (-y)
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	// top (+y)
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
}

// CubeVertices returns a copy of the interleaved cube vertex data.
func CubeVertices() []float32 {
	out := make([]float32, len(cubeVertices))
	copy(out, cubeVertices)
	return out
}

// Geometry is an uploaded, immutable vertex array.
type Geometry struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// BuildCube uploads the cube once. The returned Geometry can be shared by any
// number of objects.
func BuildCube() Geometry {
	var g Geometry
	g.Count = CubeVertexCount

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*floatSize, gl.Ptr(cubeVertices), gl.STATIC_DRAW)

	stride := int32(cubeStride * floatSize)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*floatSize))
	gl.EnableVertexAttribArray(2)

	// unbind to reduce accidental state changes
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g
}

// Draw binds the vertex array and issues one triangle draw.
func (g Geometry) Draw() {
	gl.BindVertexArray(g.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, g.Count)
}

func (g *Geometry) Delete() {
	if g.VBO != 0 {
		gl.DeleteBuffers(1, &g.VBO)
		g.VBO = 0
	}
	if g.VAO != 0 {
		gl.DeleteVertexArrays(1, &g.VAO)
		g.VAO = 0
	}
}
