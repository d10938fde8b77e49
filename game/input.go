package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const stickDeadzone = 0.2

// InputSnapshot is the player's input for one frame. Edge fields are true only
// on the frame the key or button changed.
type InputSnapshot struct {
	Up, Down, Left, Right bool

	// Move is the analog movement stick, zero without a gamepad
	Move Vec2

	// Aim is the analog aim stick, zero without a gamepad
	Aim Vec2

	// Cursor is the mouse position on screen; CursorWorld the same point in the world
	Cursor      Vec2
	CursorWorld Vec2
	HasCursor   bool

	FireDown bool
	FireUp   bool
	FireHeld bool
	Reload   bool
	Dash     bool
	Swap     bool
	Restart  bool
	Pause    bool

	ToggleDebug bool
}

// Direction returns the movement intent with length at most 1. The analog
// stick wins over the keys when it is past the deadzone.
func (in InputSnapshot) Direction() Vec2 {
	if in.Move.Len() > stickDeadzone {
		return in.Move.ClampLen(1)
	}
	var d Vec2
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d.Normalize()
}

// PollInput reads keyboard, mouse and the first gamepad. cam converts the
// cursor to world coordinates; it may be nil.
func PollInput(cam *Camera) InputSnapshot {
	var in InputSnapshot

	in.Up = ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	in.Down = ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	in.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	in.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)

	in.FireDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.FireUp = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustReleased(ebiten.KeySpace)
	in.FireHeld = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Dash = inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	in.Swap = inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyTab)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	x, y := ebiten.CursorPosition()
	in.Cursor = Vec2{X: float64(x), Y: float64(y)}
	in.HasCursor = true

	pollGamepad(&in)

	if cam != nil {
		in.CursorWorld = cam.ScreenToWorld(in.Cursor)
	}
	return in
}

// pollGamepad merges the first standard-layout gamepad into in.
func pollGamepad(in *InputSnapshot) {
	ids := ebiten.AppendGamepadIDs(nil)
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		in.Move = Vec2{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		in.Aim = Vec2{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
		if in.Aim.Len() > stickDeadzone {
			in.HasCursor = false
		}

		fire := ebiten.StandardGamepadButtonFrontBottomRight
		in.FireDown = in.FireDown || inpututil.IsStandardGamepadButtonJustPressed(id, fire)
		in.FireUp = in.FireUp || inpututil.IsStandardGamepadButtonJustReleased(id, fire)
		in.FireHeld = in.FireHeld || ebiten.IsStandardGamepadButtonPressed(id, fire)
		in.Reload = in.Reload || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Dash = in.Dash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Swap = in.Swap || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Pause = in.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.Restart = in.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft)
		return
	}
}
