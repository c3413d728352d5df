package manager_test

import (
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

func newTestStateManager() *manager.StateManager {
	return manager.NewStateManager(log.New(io.Discard, "", 0))
}

func TestStateManagerSpawnsCanonicalChain(t *testing.T) {
	sm := newTestStateManager()
	store := entity.NewStore()

	snake := sm.SpawnSnake(store)
	positions, ok := snake.Positions(store)
	require.True(t, ok)
	assert.Equal(t, []types.Point{types.StartHead, types.StartTail}, positions)
	assert.Equal(t, types.StartDirection, snake.Direction)
}

func TestStateManagerReset(t *testing.T) {
	sm := newTestStateManager()
	store := entity.NewStore()
	snake := sm.SpawnSnake(store)

	// Grow and move the chain off the start state before resetting.
	snake.Grow(store, types.Point{X: 3, Y: 1})
	store.SetPosition(snake.Head(), types.Point{X: 7, Y: 7})

	snake = sm.Reset(snake, store)
	positions, ok := snake.Positions(store)
	require.True(t, ok)
	assert.Equal(t, []types.Point{types.StartHead, types.StartTail}, positions)
	assert.Equal(t, types.StartDirection, snake.Direction)
	assert.Equal(t, 2, store.Len(), "reset must not leak segments")
	assert.Equal(t, 1, sm.Stats().Runs)
}

func TestStateManagerResetIdempotent(t *testing.T) {
	sm := newTestStateManager()
	store := entity.NewStore()
	snake := sm.SpawnSnake(store)

	// Resetting an already-canonical chain yields an identical chain.
	snake = sm.Reset(snake, store)
	first, ok := snake.Positions(store)
	require.True(t, ok)

	snake = sm.Reset(snake, store)
	second, ok := snake.Positions(store)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, store.Len())
}

func TestStateManagerStats(t *testing.T) {
	sm := newTestStateManager()

	sm.RecordTick(2)
	sm.RecordTick(5)
	sm.RecordTick(3)

	stats := sm.Stats()
	assert.Equal(t, 3, stats.Ticks)
	assert.Equal(t, 5, stats.LongestChain)
}

func TestStateManagerSessionID(t *testing.T) {
	sm := newTestStateManager()

	_, err := uuid.Parse(sm.SessionID())
	assert.NoError(t, err)
}
