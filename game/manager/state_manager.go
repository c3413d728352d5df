package manager

import (
	"log"

	"github.com/google/uuid"

	"gridsnake/game/entity"
)

// SessionStats is the in-memory tally for the current process. Nothing
// here survives a restart.
type SessionStats struct {
	Runs         int // completed runs, i.e. resets performed
	LongestChain int
	Ticks        int
}

// StateManager owns the Playing -> Resetting -> Playing transition and
// the canonical start configuration. Detecting a collision and coming
// back to the start state happen within the same tick; no dead state is
// ever observable from outside.
type StateManager struct {
	sessionID string
	stats     SessionStats
	logger    *log.Logger
}

func NewStateManager(logger *log.Logger) *StateManager {
	return &StateManager{
		sessionID: uuid.New().String(),
		logger:    logger,
	}
}

// SpawnSnake creates the canonical start chain in the store.
func (sm *StateManager) SpawnSnake(store *entity.Store) *entity.Snake {
	snake := entity.NewSnake(store)
	sm.recordLength(snake.Len())
	return snake
}

// Reset destroys the whole chain and respawns the canonical start state.
// It returns the fresh snake; the old one must not be used again.
func (sm *StateManager) Reset(snake *entity.Snake, store *entity.Store) *entity.Snake {
	sm.stats.Runs++
	sm.logger.Printf("session %s: game over at length %d, run %d", sm.sessionID, snake.Len(), sm.stats.Runs)
	snake.Destroy(store)
	return sm.SpawnSnake(store)
}

// RecordTick bumps the tick counter and tracks the longest chain seen.
func (sm *StateManager) RecordTick(chainLen int) {
	sm.stats.Ticks++
	sm.recordLength(chainLen)
}

func (sm *StateManager) recordLength(n int) {
	if n > sm.stats.LongestChain {
		sm.stats.LongestChain = n
	}
}

func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

func (sm *StateManager) Stats() SessionStats {
	return sm.stats
}
