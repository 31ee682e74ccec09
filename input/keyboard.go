package input

import (
	cfg "github.com/automoto/shadowstep/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard polls ebiten keys and standard gamepads through cfg.Input bindings.
type Keyboard struct {
	gamepadIDs []ebiten.GamepadID
	held       [cfg.ActionCount]bool
	axis       float64
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Advance samples every binding once for this tick.
func (k *Keyboard) Advance() {
	k.held = [cfg.ActionCount]bool{}
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				k.held[actionID] = true
			}
		}
		for _, gpID := range k.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					k.held[actionID] = true
				}
			}
		}
	}

	k.axis = k.digitalAxis()
	if analog, ok := k.analogAxis(); ok {
		k.axis = analog
	}
}

func (k *Keyboard) digitalAxis() float64 {
	axis := 0.0
	if k.held[cfg.ActionMoveLeft] {
		axis--
	}
	if k.held[cfg.ActionMoveRight] {
		axis++
	}
	return axis
}

// analogAxis reads the left stick of the first gamepad past the deadzone.
func (k *Keyboard) analogAxis() (float64, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone || horizontal > deadzone {
			return ClampAxis(horizontal), true
		}
	}
	return 0, false
}

func (k *Keyboard) Pressed(action cfg.ActionID) bool {
	if action < 0 || action >= cfg.ActionCount {
		return false
	}
	return k.held[action]
}

func (k *Keyboard) Axis() float64 {
	return k.axis
}
