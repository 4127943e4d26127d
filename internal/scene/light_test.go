package scene_test

import (
	"math"
	"testing"

	"gllights/internal/config"
	"gllights/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestOrbitAtZero(t *testing.T) {
	got := scene.OrbitPosition(0, 1.5, 1)
	assert.Equal(t, mgl32.Vec3{0, 0, 1.5}, got)
}

func TestOrbitIsPeriodic(t *testing.T) {
	for _, speed := range []float32{0.5, 1, 3} {
		period := 2 * math.Pi / float64(speed)
		for _, tm := range []float64{0, 0.25, 1, 2.7, 10} {
			a := scene.OrbitPosition(tm, 1.5, speed)
			b := scene.OrbitPosition(tm+period, 1.5, speed)
			assertNear(t, a, b, 1e-4)
		}
	}
}

func TestOrbitSharesSineOnXY(t *testing.T) {
	p := scene.OrbitPosition(0.7, 2, 1)
	assert.Equal(t, p.X(), p.Y())
	assert.InDelta(t, 2*math.Sin(0.7), p.X(), 1e-6)
	assert.InDelta(t, 2*math.Cos(0.7), p.Z(), 1e-6)
}

func TestLightUpdate(t *testing.T) {
	l := scene.NewLight(config.Default().Light)
	assert.Equal(t, mgl32.Vec3{2, 0, 2}, l.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Colour)

	l.Update(0)
	assert.Equal(t, mgl32.Vec3{0, 0, 1.5}, l.Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.Colour)
}

func assertNear(t *testing.T, want, got mgl32.Vec3, tol float32) {
	t.Helper()
	assert.LessOrEqual(t, got.Sub(want).Len(), tol, "want %v, got %v", want, got)
}
