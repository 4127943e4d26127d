package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical control, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionLook
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Source is the polled device state the manager reads once per frame.
type Source interface {
	IsKeyPressed(key glfw.Key) bool
	IsMouseButtonPressed(button glfw.MouseButton) bool
}

// InputManager maps physical keys/buttons to actions and keeps per-frame
// edge state. It is polled from the frame loop, so it is not safe for
// concurrent use.
type InputManager struct {
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	prevState    [ActionCount]bool
}

// NewInputManager creates an InputManager with the default bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButton1, ActionLook)

	return im
}

// BindKey binds a physical key to an action. A key may drive several actions
// and an action may have several keys.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// Poll reads every bound key and button from src. An action is active when
// any of its bindings is held.
func (im *InputManager) Poll(src Source) {
	im.prevState = im.currentState
	im.currentState = [ActionCount]bool{}

	for key, actions := range im.keyToActions {
		if !src.IsKeyPressed(key) {
			continue
		}
		for _, act := range actions {
			im.currentState[act] = true
		}
	}
	for button, actions := range im.mouseButtonToActions {
		if !src.IsMouseButtonPressed(button) {
			continue
		}
		for _, act := range actions {
			im.currentState[act] = true
		}
	}
}

// IsActive returns true if the action is currently held
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action]
}

// JustPressed returns true only on the poll where the action became active
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	return im.currentState[action] && !im.prevState[action]
}
