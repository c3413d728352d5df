package manager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func TestWallCollision(t *testing.T) {
	cm := manager.NewCollisionManager(types.Grid{Width: 10, Height: 10})

	hits := []types.Point{
		{X: -1, Y: 3},
		{X: 3, Y: -1},
		{X: 10, Y: 3},
		{X: 3, Y: 10},
	}
	for _, pos := range hits {
		assert.True(t, cm.IsWallCollision(pos), "expected wall hit at %v", pos)
	}

	assert.False(t, cm.IsWallCollision(types.Point{X: 0, Y: 0}))
	assert.False(t, cm.IsWallCollision(types.Point{X: 9, Y: 9}))
}

func TestSelfCollision(t *testing.T) {
	cm := manager.NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snapshot := []types.Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 4, Y: 2}}

	// Every snapshot cell counts, the old head cell included.
	for _, pos := range snapshot {
		assert.True(t, cm.IsSelfCollision(pos, snapshot))
	}
	assert.False(t, cm.IsSelfCollision(types.Point{X: 5, Y: 5}, snapshot))
}

func TestCheckCollision(t *testing.T) {
	cm := manager.NewCollisionManager(types.Grid{Width: 10, Height: 10})
	snapshot := []types.Point{{X: 3, Y: 3}}

	assert.True(t, cm.CheckCollision(types.Point{X: -1, Y: 0}, snapshot))
	assert.True(t, cm.CheckCollision(types.Point{X: 3, Y: 3}, snapshot))
	assert.False(t, cm.CheckCollision(types.Point{X: 4, Y: 4}, snapshot))
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := manager.NewCollisionManager(types.Grid{Width: 10, Height: 10})
	occupied := []types.Point{{X: 2, Y: 2}}

	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 2, Y: 2}, occupied))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 10, Y: 2}, occupied))
	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 5, Y: 5}, occupied))
}
