package entity

import "gridsnake/game/types"

// Snake is the playable actor: a heading plus the ordered chain of
// segment handles. Chain[0] is the head; the rest follow head-to-tail.
type Snake struct {
	Direction types.Direction
	Chain     []Handle
}

// NewSnake spawns the canonical two-element chain into the store: the
// head at the start cell with one segment trailing it.
func NewSnake(store *Store) *Snake {
	return &Snake{
		Direction: types.StartDirection,
		Chain: []Handle{
			store.Spawn(types.StartHead),
			store.Spawn(types.StartTail),
		},
	}
}

// Head returns the handle of the lead segment.
func (s *Snake) Head() Handle {
	return s.Chain[0]
}

// Grow appends one segment at the given position to the end of the chain.
func (s *Snake) Grow(store *Store, pos types.Point) {
	s.Chain = append(s.Chain, store.Spawn(pos))
}

// Destroy releases every chain segment from the store. The snake is not
// usable afterwards; reset recreates it with NewSnake.
func (s *Snake) Destroy(store *Store) {
	for _, h := range s.Chain {
		store.Destroy(h)
	}
	s.Chain = nil
}

// Len returns the chain length including the head.
func (s *Snake) Len() int {
	return len(s.Chain)
}

// Positions resolves the chain to its ordered positions. The second
// return is false if any handle failed to resolve, in which case the
// returned slice holds only the resolvable prefix.
func (s *Snake) Positions(store *Store) ([]types.Point, bool) {
	out := make([]types.Point, 0, len(s.Chain))
	for _, h := range s.Chain {
		pos, ok := store.Position(h)
		if !ok {
			return out, false
		}
		out = append(out, pos)
	}
	return out, true
}
