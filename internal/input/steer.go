package input

import (
	"gllights/internal/camera"
	"gllights/internal/config"
)

// Steer applies the held movement actions and the cursor offset to cam.
// Translation is scaled by speed*dt; rotation only happens while ActionLook
// is held. Opposite keys cancel out.
func (im *InputManager) Steer(cam *camera.Camera, dt float32, dx, dy float64, c config.Controls) {
	step := c.Speed * dt

	if im.IsActive(ActionMoveForward) {
		cam.MoveForward(step)
	}
	if im.IsActive(ActionMoveBackward) {
		cam.MoveForward(-step)
	}
	if im.IsActive(ActionMoveRight) {
		cam.MoveRight(step)
	}
	if im.IsActive(ActionMoveLeft) {
		cam.MoveRight(-step)
	}

	if im.IsActive(ActionLook) {
		cam.Rotate(float32(dx)*c.Sensitivity, float32(dy)*c.Sensitivity)
	}
}
