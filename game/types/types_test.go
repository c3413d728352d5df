package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridsnake/game/types"
)

func TestDirectionOpposite(t *testing.T) {
	assert.Equal(t, types.Right, types.Left.Opposite())
	assert.Equal(t, types.Left, types.Right.Opposite())
	assert.Equal(t, types.Down, types.Up.Opposite())
	assert.Equal(t, types.Up, types.Down.Opposite())
}

func TestDirectionOffset(t *testing.T) {
	// Up is y+1: the vertical axis grows upward, not raster-style.
	assert.Equal(t, types.Point{X: 0, Y: 1}, types.Up.Offset())
	assert.Equal(t, types.Point{X: 0, Y: -1}, types.Down.Offset())
	assert.Equal(t, types.Point{X: -1, Y: 0}, types.Left.Offset())
	assert.Equal(t, types.Point{X: 1, Y: 0}, types.Right.Offset())
}

func TestGridContains(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}

	assert.True(t, grid.Contains(types.Point{X: 0, Y: 0}))
	assert.True(t, grid.Contains(types.Point{X: 9, Y: 9}))
	assert.False(t, grid.Contains(types.Point{X: -1, Y: 0}))
	assert.False(t, grid.Contains(types.Point{X: 0, Y: -1}))
	assert.False(t, grid.Contains(types.Point{X: 10, Y: 0}))
	assert.False(t, grid.Contains(types.Point{X: 0, Y: 10}))
}
