package manager

import (
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks the new head position against the arena bounds
// and the pre-shift body snapshot. Either hit ends the run; both firing
// on the same tick is the same single game-over.
func (cm *CollisionManager) CheckCollision(pos types.Point, snapshot []types.Point) bool {
	return cm.IsWallCollision(pos) || cm.IsSelfCollision(pos, snapshot)
}

// IsWallCollision checks if a position collides with walls
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsSelfCollision checks the position against every snapshot cell,
// including the head's own previous cell. The head always leaves its
// cell on a tick, so that entry can only match if the chain loops back.
func (cm *CollisionManager) IsSelfCollision(pos types.Point, snapshot []types.Point) bool {
	for _, p := range snapshot {
		if pos == p {
			return true
		}
	}
	return false
}

// ValidateSpawnPosition checks if a cell is free for spawning food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied []types.Point) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	for _, p := range occupied {
		if pos == p {
			return false
		}
	}
	return true
}
