package scene

import (
	"math"

	"gllights/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// Light is a single point light animated by the frame loop.
type Light struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3

	Radius float32
	Speed  float32
}

func NewLight(cfg config.Light) *Light {
	return &Light{
		Position: mgl32.Vec3(cfg.Position),
		Colour:   mgl32.Vec3(cfg.Colour),
		Radius:   cfg.Radius,
		Speed:    cfg.Speed,
	}
}

// Update moves the light to its orbit position for elapsed time t (seconds).
func (l *Light) Update(t float64) {
	l.Position = OrbitPosition(t, l.Radius, l.Speed)
}

// OrbitPosition returns the point on the light's path at time t. x and y share
// the same sine term, so the path is a tilted ellipse rather than a flat circle.
func OrbitPosition(t float64, radius, speed float32) mgl32.Vec3 {
	a := t * float64(speed)
	s := radius * float32(math.Sin(a))
	c := radius * float32(math.Cos(a))
	return mgl32.Vec3{s, s, c}
}
