package manager

import (
	"math/rand"
	"time"

	"gridsnake/game/types"
)

// FoodManager owns the food positions on the grid. It spawns one item at
// a random free cell on a fixed period and exposes the enumerate/remove
// surface the core consumes.
type FoodManager struct {
	grid         types.Grid
	foodList     []types.Point
	spawnPeriod  time.Duration
	spawnElapsed time.Duration
	maxFood      int
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, spawnPeriod time.Duration, maxFood int, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		foodList:     make([]types.Point, 0),
		spawnPeriod:  spawnPeriod,
		maxFood:      maxFood,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Update advances the spawn timer and places new food when it elapses.
// occupied lists the cells food must not spawn on (the snake's chain).
func (fm *FoodManager) Update(dt time.Duration, occupied []types.Point) {
	fm.spawnElapsed += dt
	if fm.spawnElapsed < fm.spawnPeriod {
		return
	}
	fm.spawnElapsed %= fm.spawnPeriod

	if len(fm.foodList) >= fm.maxFood {
		return
	}
	fm.foodList = append(fm.foodList, fm.GenerateFood(occupied))
}

// GenerateFood picks a random cell not covered by occupied or existing
// food. The grid is assumed to have at least one free cell.
func (fm *FoodManager) GenerateFood(occupied []types.Point) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if !fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			continue
		}
		if fm.hasFoodAt(food) {
			continue
		}
		return food
	}
}

func (fm *FoodManager) hasFoodAt(pos types.Point) bool {
	for _, f := range fm.foodList {
		if f == pos {
			return true
		}
	}
	return false
}

// GetFoodList returns the current food positions. Callers must not
// mutate the returned slice.
func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

func (fm *FoodManager) AddFood(food types.Point) {
	fm.foodList = append(fm.foodList, food)
}

// RemoveFood deletes one food item at the given position, if present.
func (fm *FoodManager) RemoveFood(food types.Point) {
	for i, f := range fm.foodList {
		if f == food {
			// Remove food from list by swapping with last element and truncating
			fm.foodList[i] = fm.foodList[len(fm.foodList)-1]
			fm.foodList = fm.foodList[:len(fm.foodList)-1]
			return
		}
	}
}
