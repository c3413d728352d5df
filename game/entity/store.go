package entity

import "gridsnake/game/types"

// Handle identifies a segment in a Store. The generation counter makes
// handles to destroyed slots resolve to nothing instead of aliasing a
// recycled slot.
type Handle struct {
	index uint32
	gen   uint32
}

type slot struct {
	gen  uint32
	live bool
	pos  types.Point
}

// Store owns the position records for every snake segment. Handles are
// created by Spawn and stay valid until Destroy.
type Store struct {
	slots []slot
	free  []uint32
	count int
}

func NewStore() *Store {
	return &Store{}
}

// Spawn creates a segment at the given position and returns its handle.
func (s *Store) Spawn(pos types.Point) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, slot{})
		idx = uint32(len(s.slots) - 1)
	}
	sl := &s.slots[idx]
	sl.live = true
	sl.pos = pos
	s.count++
	return Handle{index: idx, gen: sl.gen}
}

// Position resolves a handle to its current position. The second return
// is false for destroyed or stale handles.
func (s *Store) Position(h Handle) (types.Point, bool) {
	if int(h.index) >= len(s.slots) {
		return types.Point{}, false
	}
	sl := s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return types.Point{}, false
	}
	return sl.pos, true
}

// SetPosition moves the segment the handle refers to. It reports whether
// the handle was still valid.
func (s *Store) SetPosition(h Handle, pos types.Point) bool {
	if int(h.index) >= len(s.slots) {
		return false
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return false
	}
	sl.pos = pos
	return true
}

// Destroy releases the segment. Destroying an already-dead handle is a
// no-op. The slot is recycled under a new generation.
func (s *Store) Destroy(h Handle) {
	if int(h.index) >= len(s.slots) {
		return
	}
	sl := &s.slots[h.index]
	if !sl.live || sl.gen != h.gen {
		return
	}
	sl.live = false
	sl.gen++
	s.count--
	s.free = append(s.free, h.index)
}

// Len returns the number of live segments.
func (s *Store) Len() int {
	return s.count
}
