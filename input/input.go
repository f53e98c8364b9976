// Package input samples keyboard, gamepad and touch state into
// component.Input.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/propeller/ecs/component"
)

// stickDeadzone is the left stick deflection below which the axis reads 0.
const stickDeadzone = 0.3

// raw is one frame of device state before it is merged.
type raw struct {
	left, right  bool
	stick        float64
	jumpHeld     bool
	jumpPressed  bool
	jumpReleased bool
	taunt        bool
	touch        bool
}

// Device reads input from ebiten. The first connected gamepad is merged with
// the keyboard; a fresh touch toggles the jump flag.
type Device struct {
	touches []ebiten.TouchID
}

func NewDevice() *Device {
	return &Device{}
}

func (d *Device) Sample() component.Input {
	return merge(d.poll())
}

func (d *Device) poll() raw {
	r := raw{
		left:         ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		right:        ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		jumpHeld:     ebiten.IsKeyPressed(ebiten.KeySpace),
		jumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		jumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace),
		taunt:        inpututil.IsKeyJustPressed(ebiten.KeyT),
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		r.stick = ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		r.jumpHeld = r.jumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		r.jumpPressed = r.jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		r.jumpReleased = r.jumpReleased || inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightBottom)
		r.taunt = r.taunt || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightTop)
	}

	d.touches = inpututil.AppendJustPressedTouchIDs(d.touches[:0])
	r.touch = len(d.touches) > 0
	return r
}

func merge(r raw) component.Input {
	var moveX float64
	if r.left {
		moveX -= 1
	}
	if r.right {
		moveX += 1
	}
	if r.stick < -stickDeadzone || r.stick > stickDeadzone {
		moveX = r.stick
	}

	return component.Input{
		MoveX:        moveX,
		Jump:         r.jumpHeld,
		JumpPressed:  r.jumpPressed,
		JumpReleased: r.jumpReleased,
		TauntPressed: r.taunt,
		JumpToggled:  r.touch,
	}
}
