package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// KeyState reports whether a logical key is currently held. The ui
// package provides the raylib-backed implementation; tests fake it.
type KeyState interface {
	IsDown(key types.Key) bool
}

type binding struct {
	key types.Key
	dir types.Direction
}

// bindings is scanned in order; the first held key wins the pass.
// Arrow keys take priority over their WASD aliases.
var bindings = []binding{
	{types.KeyArrowLeft, types.Left},
	{types.KeyArrowRight, types.Right},
	{types.KeyArrowDown, types.Down},
	{types.KeyArrowUp, types.Up},
	{types.KeyA, types.Left},
	{types.KeyD, types.Right},
	{types.KeyS, types.Down},
	{types.KeyW, types.Up},
}

// InputManager turns held directional keys into heading changes.
type InputManager struct {
	keys KeyState
}

func NewInputManager(keys KeyState) *InputManager {
	return &InputManager{keys: keys}
}

// Apply runs one input pass: the highest-priority held direction becomes
// the snake's heading unless it is the exact opposite of the current one.
// Holding the opposite key leaves the heading unchanged, which is the
// only guard against instant 180-degree self-collision.
func (im *InputManager) Apply(snake *entity.Snake) {
	dir, ok := im.candidate()
	if !ok {
		return
	}
	if dir != snake.Direction.Opposite() {
		snake.Direction = dir
	}
}

func (im *InputManager) candidate() (types.Direction, bool) {
	for _, b := range bindings {
		if im.keys.IsDown(b.key) {
			return b.dir, true
		}
	}
	return 0, false
}
