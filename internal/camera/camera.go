package camera

import (
	"math"

	"gllights/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch is the exclusive pitch bound that keeps the front vector away from
// world up, where LookAt degenerates.
const MaxPitch = 89.0

// pitchLimit is the largest float32 strictly below MaxPitch.
var pitchLimit = math.Nextafter32(MaxPitch, 0)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a yaw/pitch fly camera. Angles are in degrees.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	FOV       float32
	NearPlane float32
	FarPlane  float32
}

func New(cfg config.Camera) *Camera {
	c := &Camera{
		Position:  mgl32.Vec3(cfg.Position),
		Yaw:       cfg.Yaw,
		FOV:       cfg.FOV,
		NearPlane: cfg.Near,
		FarPlane:  cfg.Far,
	}
	c.Rotate(0, cfg.Pitch)
	return c
}

// Rotate adds the offsets to yaw and pitch. Pitch is kept strictly inside
// ±MaxPitch, yaw is left to grow since it only feeds sin/cos.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.Pitch += dPitch

	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
}

// MoveForward moves along the front vector. amount is expected to already be
// scaled by speed and frame time.
func (c *Camera) MoveForward(amount float32) {
	c.Position = c.Position.Add(c.Front().Mul(amount))
}

// MoveRight strafes along the right vector.
func (c *Camera) MoveRight(amount float32) {
	c.Position = c.Position.Add(c.Right().Mul(amount))
}

func (c *Camera) Front() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(c.Yaw))
	p := float64(mgl32.DegToRad(c.Pitch))
	fx := float32(math.Cos(y) * math.Cos(p))
	fy := float32(math.Sin(p))
	fz := float32(math.Sin(y) * math.Cos(p))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(worldUp).Normalize()
}

func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// ViewMatrix is rebuilt from the current position and orientation on every call.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// ProjectionMatrix uses the fixed vertical FOV; the caller passes the current
// window aspect ratio every frame so resizes are picked up.
func (c *Camera) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspectRatio, c.NearPlane, c.FarPlane)
}
