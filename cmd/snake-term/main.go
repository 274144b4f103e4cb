// Command snake-term plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-levels/ai"
	"snake-levels/game"
	"snake-levels/game/store"
	"snake-levels/stats"
	"snake-levels/ui/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := flag.String("env", ".env", "Optional file with SNAKE_* settings")
	seed := flag.Uint64("seed", 0, "RNG seed (0 = random)")
	autopilot := flag.Bool("autopilot", false, "Let the computer play; arrow keys still steer")
	debug := flag.Bool("debug", false, "Write a log to logs/snake-term.log")
	flag.Parse()

	if f := setupLogging(*debug); f != nil {
		defer f.Close()
	}

	cfg, err := game.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := run(cfg, *autopilot); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg game.Config, autopilot bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, err := stats.NewHistory(cfg.StatsPath)
	if err != nil {
		log.Printf("Starting with empty stats: %v", err)
	}

	g := game.NewGame(cfg, store.NewFileStore(cfg.HighScorePath))
	input := term.NewInput(screen)
	var src game.InputSource = input
	if autopilot {
		src = game.MultiInput{ai.NewAutopilot(g), input}
	}
	driver := game.NewDriver(g, src, term.NewRenderer(screen))
	driver.SetRecorder(history)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return input.Pump(ctx)
	})
	eg.Go(func() error {
		// Finalizing the screen also unblocks the pump.
		defer screen.Fini()
		return driver.Run(ctx)
	})

	err = eg.Wait()
	log.Printf("Shutting down, high score %d", g.HighScore())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
