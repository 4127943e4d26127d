package graphics_test

import (
	"testing"

	"gllights/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeVertices(t *testing.T) {
	v := graphics.CubeVertices()
	const stride = 8
	require.Len(t, v, graphics.CubeVertexCount*stride)

	vertex := func(i int) (pos, normal mgl32.Vec3, uv mgl32.Vec2) {
		o := i * stride
		return mgl32.Vec3{v[o], v[o+1], v[o+2]}, mgl32.Vec3{v[o+3], v[o+4], v[o+5]}, mgl32.Vec2{v[o+6], v[o+7]}
	}

	for tri := 0; tri < graphics.CubeVertexCount/3; tri++ {
		p0, n0, _ := vertex(tri * 3)
		p1, n1, _ := vertex(tri*3 + 1)
		p2, n2, _ := vertex(tri*3 + 2)

		require.Equal(t, n0, n1, "triangle %d", tri)
		require.Equal(t, n0, n2, "triangle %d", tri)

		// Counter-clockwise winding seen from outside: the face normal
		// from the cross product agrees with the stored normal.
		face := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		assert.LessOrEqual(t, face.Sub(n0).Len(), float32(1e-6), "triangle %d winds against its normal", tri)

		for _, p := range []mgl32.Vec3{p0, p1, p2} {
			for _, c := range p {
				assert.Contains(t, []float32{-0.5, 0.5}, c)
			}
		}
	}

	for i := 0; i < graphics.CubeVertexCount; i++ {
		_, _, uv := vertex(i)
		assert.True(t, uv.X() >= 0 && uv.X() <= 1 && uv.Y() >= 0 && uv.Y() <= 1, "uv %v out of range", uv)
	}
}

func TestCubeVerticesIsCopy(t *testing.T) {
	a := graphics.CubeVertices()
	a[0] = 42
	assert.NotEqual(t, float32(42), graphics.CubeVertices()[0])
}

func TestBuildCube(t *testing.T) {
	onGL(t, func() {
		g := graphics.BuildCube()
		defer g.Delete()
		assert.NotZero(t, g.VAO)
		assert.NotZero(t, g.VBO)
		assert.Equal(t, int32(graphics.CubeVertexCount), g.Count)
	})
}
