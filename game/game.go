package game

import (
	"log"
	"math/rand"
	"time"

	"golang.org/x/exp/slices"

	"gridsnake/game/config"
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Game wires the managers around a single snake and runs the fixed
// per-frame pipeline: input, movement and collision, game-over handling,
// food consumption, growth. Everything runs on the caller's goroutine in
// that order, so no locking is needed.
type Game struct {
	Grid types.Grid

	store        *entity.Store
	snake        *entity.Snake
	inputMgr     *manager.InputManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	clock        MovementClock

	// pendingTail is the cell the tail vacated on the most recent tick,
	// the spawn point for segments grown that same tick.
	pendingTail  types.Point
	growthQueued int
	gameOver     bool

	logger *log.Logger
}

func NewGame(cfg config.Config, keys manager.KeyState, logger *log.Logger, rng *rand.Rand) *Game {
	grid := types.Grid{Width: cfg.Grid.Width, Height: cfg.Grid.Height}
	store := entity.NewStore()
	collisionMgr := manager.NewCollisionManager(grid)
	stateMgr := manager.NewStateManager(logger)

	g := &Game{
		Grid:         grid,
		store:        store,
		inputMgr:     manager.NewInputManager(keys),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, cfg.Food.SpawnPeriod(), cfg.Food.Max, rng),
		stateMgr:     stateMgr,
		clock:        NewMovementClock(cfg.Snake.TickPeriod()),
		logger:       logger,
	}
	g.snake = stateMgr.SpawnSnake(store)
	return g
}

// Update runs one frame. Input is processed every call; the snake only
// advances when the movement clock fires, by exactly one cell.
func (g *Game) Update(dt time.Duration) {
	g.inputMgr.Apply(g.snake)

	if g.clock.Tick(dt) {
		g.tick()
	}

	positions, ok := g.snake.Positions(g.store)
	if ok {
		g.foodMgr.Update(dt, positions)
	}
}

// tick advances the snake by one cell and settles the consequences.
func (g *Game) tick() {
	// Snapshot before mutating anything. A chain whose handles do not all
	// resolve is a lifecycle bug; skip the whole tick rather than commit a
	// partial shift.
	snapshot, ok := g.snake.Positions(g.store)
	if !ok || len(snapshot) != g.snake.Len() {
		g.logger.Printf("defect: chain of length %d resolved %d positions, tick skipped", g.snake.Len(), len(snapshot))
		return
	}

	step := g.snake.Direction.Offset()
	newHead := types.Point{X: snapshot[0].X + step.X, Y: snapshot[0].Y + step.Y}

	// Collisions are judged against the pre-shift snapshot: by the time
	// the head arrives, every segment has moved one cell forward.
	if g.collisionMgr.CheckCollision(newHead, snapshot) {
		g.gameOver = true
	}

	// Commit the shift: the head steps out, each segment takes the cell
	// its predecessor held before this tick. Using the snapshot keeps the
	// updates from cascading.
	g.store.SetPosition(g.snake.Head(), newHead)
	for i := 1; i < len(g.snake.Chain); i++ {
		g.store.SetPosition(g.snake.Chain[i], snapshot[i-1])
	}
	g.pendingTail = snapshot[len(snapshot)-1]

	// Game-over is handled before food and growth: a tick that both
	// collides and eats resets first and the growth never happens.
	if g.gameOver {
		g.reset()
		return
	}

	// Food consumption. Every item under the new head queues one growth
	// event and is handed back to the food source for removal.
	for _, food := range slices.Clone(g.foodMgr.GetFoodList()) {
		if food == newHead {
			g.foodMgr.RemoveFood(food)
			g.growthQueued++
		}
	}

	// Growth application. Each queued event appends one segment at the
	// cell this tick's tail vacated.
	for ; g.growthQueued > 0; g.growthQueued-- {
		g.snake.Grow(g.store, g.pendingTail)
	}

	g.stateMgr.RecordTick(g.snake.Len())
}

// reset tears the chain down and rebuilds the canonical start state
// within the same tick. Queued growth and the pending tail cell die with
// the old chain.
func (g *Game) reset() {
	g.growthQueued = 0
	g.pendingTail = types.Point{}
	g.gameOver = false
	g.snake = g.stateMgr.Reset(g.snake, g.store)
}

// Frame is the read-only view handed to the presentation adapter once
// per frame, after the core has settled.
type Frame struct {
	Grid  types.Grid
	Chain []types.Point // head first
	Food  []types.Point
	Stats manager.SessionStats
}

func (g *Game) Frame() Frame {
	chain, _ := g.snake.Positions(g.store)
	return Frame{
		Grid:  g.Grid,
		Chain: chain,
		Food:  slices.Clone(g.foodMgr.GetFoodList()),
		Stats: g.stateMgr.Stats(),
	}
}

// Stats returns the session tallies.
func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// SessionID returns the identifier logged for this process run.
func (g *Game) SessionID() string {
	return g.stateMgr.SessionID()
}
