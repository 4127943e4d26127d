package input_test

import (
	"testing"

	"gllights/internal/camera"
	"gllights/internal/config"
	"gllights/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	keys    map[glfw.Key]bool
	buttons map[glfw.MouseButton]bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{keys: map[glfw.Key]bool{}, buttons: map[glfw.MouseButton]bool{}}
}

func (f *fakeSource) IsKeyPressed(key glfw.Key) bool { return f.keys[key] }

func (f *fakeSource) IsMouseButtonPressed(b glfw.MouseButton) bool { return f.buttons[b] }

func TestPollEdges(t *testing.T) {
	im := input.NewInputManager()
	src := newFakeSource()

	src.keys[glfw.KeyW] = true
	im.Poll(src)
	assert.True(t, im.IsActive(input.ActionMoveForward))
	assert.True(t, im.JustPressed(input.ActionMoveForward))

	im.Poll(src)
	assert.True(t, im.IsActive(input.ActionMoveForward))
	assert.False(t, im.JustPressed(input.ActionMoveForward))

	src.keys[glfw.KeyW] = false
	im.Poll(src)
	assert.False(t, im.IsActive(input.ActionMoveForward))
	assert.False(t, im.JustPressed(input.ActionMoveForward))
}

func TestExtraBinding(t *testing.T) {
	im := input.NewInputManager()
	im.BindKey(glfw.KeyUp, input.ActionMoveForward)
	im.BindKey(glfw.KeyUp, input.Action(99))

	src := newFakeSource()
	src.keys[glfw.KeyUp] = true
	im.Poll(src)
	assert.True(t, im.IsActive(input.ActionMoveForward))
	assert.False(t, im.IsActive(input.Action(99)))

	src.keys[glfw.KeyUp] = false
	src.keys[glfw.KeyW] = true
	im.Poll(src)
	assert.True(t, im.IsActive(input.ActionMoveForward))
	assert.False(t, im.JustPressed(input.ActionMoveForward))
}

func TestSteerMovement(t *testing.T) {
	cfg := config.Default()
	im := input.NewInputManager()
	src := newFakeSource()
	cam := camera.New(cfg.Camera)
	cam.Position = mgl32.Vec3{}

	src.keys[glfw.KeyW] = true
	im.Poll(src)
	im.Steer(cam, 0.5, 0, 0, cfg.Controls)
	assertNear(t, mgl32.Vec3{0, 0, -2.5}, cam.Position, 1e-5)

	src.keys[glfw.KeyS] = true
	im.Poll(src)
	im.Steer(cam, 0.5, 0, 0, cfg.Controls)
	assertNear(t, mgl32.Vec3{0, 0, -2.5}, cam.Position, 1e-5)
}

func TestSteerZeroDeltaTime(t *testing.T) {
	cfg := config.Default()
	im := input.NewInputManager()
	src := newFakeSource()
	src.keys[glfw.KeyW] = true
	src.keys[glfw.KeyD] = true
	cam := camera.New(cfg.Camera)
	before := cam.Position

	im.Poll(src)
	im.Steer(cam, 0, 0, 0, cfg.Controls)
	assert.Equal(t, before, cam.Position)
}

func TestSteerRotatesOnlyWhileLooking(t *testing.T) {
	cfg := config.Default()
	im := input.NewInputManager()
	src := newFakeSource()
	cam := camera.New(cfg.Camera)
	yaw, pitch := cam.Yaw, cam.Pitch

	im.Poll(src)
	im.Steer(cam, 0.016, 40, 20, cfg.Controls)
	assert.Equal(t, yaw, cam.Yaw)
	assert.Equal(t, pitch, cam.Pitch)

	src.buttons[glfw.MouseButton1] = true
	im.Poll(src)
	im.Steer(cam, 0.016, 40, 20, cfg.Controls)
	assert.InDelta(t, yaw+10, cam.Yaw, 1e-5)
	assert.InDelta(t, pitch+5, cam.Pitch, 1e-5)
}

func assertNear(t *testing.T, want, got mgl32.Vec3, tol float32) {
	t.Helper()
	assert.LessOrEqual(t, got.Sub(want).Len(), tol, "want %v, got %v", want, got)
}
