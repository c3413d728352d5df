package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gridsnake/game"
	"gridsnake/game/config"
	"gridsnake/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (defaults used when empty)")
	speed := flag.Int("speed", 0, "Movement period in milliseconds (overrides config)")
	flag.Parse()

	logger := log.New(os.Stderr, "gridsnake: ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	if *speed > 0 {
		cfg.Snake.TickMillis = *speed
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Grid Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.FPS))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.NewGame(cfg, ui.NewKeyboard(), logger, rng)
	logger.Printf("session %s: %dx%d grid, %dms tick", g.SessionID(), cfg.Grid.Width, cfg.Grid.Height, cfg.Snake.TickMillis)

	renderer := ui.NewRenderer(cfg.Grid.Width, cfg.Grid.Height)
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		now := time.Now()
		g.Update(now.Sub(lastUpdate))
		lastUpdate = now

		renderer.Draw(g.Frame())
	}

	stats := g.Stats()
	logger.Printf("session %s: %d ticks, %d runs, longest chain %d", g.SessionID(), stats.Ticks, stats.Runs, stats.LongestChain)
}
