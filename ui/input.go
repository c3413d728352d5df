package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game/types"
)

var keyCodes = map[types.Key]int32{
	types.KeyArrowLeft:  rl.KeyLeft,
	types.KeyArrowRight: rl.KeyRight,
	types.KeyArrowDown:  rl.KeyDown,
	types.KeyArrowUp:    rl.KeyUp,
	types.KeyA:          rl.KeyA,
	types.KeyD:          rl.KeyD,
	types.KeyS:          rl.KeyS,
	types.KeyW:          rl.KeyW,
}

// Keyboard answers held-key queries from the raylib window.
type Keyboard struct{}

func NewKeyboard() Keyboard {
	return Keyboard{}
}

func (Keyboard) IsDown(key types.Key) bool {
	code, ok := keyCodes[key]
	if !ok {
		return false
	}
	return rl.IsKeyDown(code)
}
