package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-levels/ai"
	"snake-levels/game"
	"snake-levels/game/store"
	"snake-levels/stats"
	"snake-levels/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	envFile := flag.String("env", ".env", "Optional file with SNAKE_* settings")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = random)")
	autopilot := flag.Bool("autopilot", false, "Let the computer play; arrow keys still steer")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := game.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, err := stats.NewHistory(cfg.StatsPath)
	if err != nil {
		log.Printf("Starting with empty stats: %v", err)
	}

	g := game.NewGame(cfg, store.NewFileStore(cfg.HighScorePath))
	defer g.Close()

	width, height := ui.WindowSize(cfg.GridSize, cfg.CellSize)
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(width, height, "Snake Game with Levels & Obstacles")
	defer rl.CloseWindow()

	var input game.InputSource = ui.NewKeyboard()
	if *autopilot {
		input = game.MultiInput{ai.NewAutopilot(g), input}
	}
	driver := game.NewDriver(g, input, ui.NewRenderer(cfg.CellSize))
	driver.SetRecorder(history)

	log.Printf("run %s started", g.RunID())
	for ctx.Err() == nil {
		// EndDrawing waits out the frame, so one frame is one tick.
		rl.SetTargetFPS(int32(g.Speed()))
		if !driver.Step() {
			break
		}
	}
	log.Printf("Shutting down, high score %d", g.HighScore())
}
