package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
)

const (
	borderPadding = 10 // padding around the play area
	hudHeight     = 28
)

// Entity colors, matching the original game.
var (
	headColor    = rl.NewColor(178, 178, 178, 255)
	segmentColor = rl.NewColor(76, 76, 76, 255)
	foodColor    = rl.NewColor(255, 0, 255, 255)
	gridColor    = rl.NewColor(40, 40, 40, 255)
)

// Renderer draws a frame snapshot onto the raylib window. It only reads
// the core's output; nothing flows back.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(gridWidth, gridHeight int) *Renderer {
	r := &Renderer{
		gridWidth:  int32(gridWidth),
		gridHeight: int32(gridHeight),
	}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the cell size from the window, keeping
// cells square and the arena centered. Call after a resize.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	availW := r.screenWidth - 2*borderPadding
	availH := r.screenHeight - 2*borderPadding - hudHeight

	cellW := availW / r.gridWidth
	cellH := availH / r.gridHeight
	if cellW < cellH {
		r.cellSize = cellW
	} else {
		r.cellSize = cellH
	}
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.offsetX = (r.screenWidth - r.cellSize*r.gridWidth) / 2
	r.offsetY = hudHeight + (r.screenHeight-hudHeight-r.cellSize*r.gridHeight)/2
}

// Draw renders one settled frame.
func (r *Renderer) Draw(frame game.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawArena()
	for _, food := range frame.Food {
		r.drawCell(food.X, food.Y, foodColor, 0.8)
	}
	for i, pos := range frame.Chain {
		if i == 0 {
			r.drawCell(pos.X, pos.Y, headColor, 0.8)
		} else {
			r.drawCell(pos.X, pos.Y, segmentColor, 0.65)
		}
	}
	r.drawHUD(frame)

	rl.EndDrawing()
}

func (r *Renderer) drawArena() {
	rl.DrawRectangleLines(
		r.offsetX-1, r.offsetY-1,
		r.cellSize*r.gridWidth+2, r.cellSize*r.gridHeight+2,
		gridColor,
	)
}

// drawCell fills a grid cell, scaled down around its center. Grid y grows
// upward while screen y grows downward, so the row is flipped here.
func (r *Renderer) drawCell(x, y int, color rl.Color, scale float32) {
	size := int32(float32(r.cellSize) * scale)
	pad := (r.cellSize - size) / 2
	screenX := r.offsetX + int32(x)*r.cellSize + pad
	screenY := r.offsetY + (r.gridHeight-1-int32(y))*r.cellSize + pad
	rl.DrawRectangle(screenX, screenY, size, size, color)
}

func (r *Renderer) drawHUD(frame game.Frame) {
	text := fmt.Sprintf("length %d   best %d   runs %d", len(frame.Chain), frame.Stats.LongestChain, frame.Stats.Runs)
	rl.DrawText(text, borderPadding, 6, 18, rl.RayWhite)
}
