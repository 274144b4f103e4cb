package game

import (
	"context"
	"log"
	"time"
)

// Counter is implemented by recorders that know how many runs they hold.
type Counter interface {
	Count() int
}

// Driver runs the poll, tick, render cycle for one game.
type Driver struct {
	game     *Game
	input    InputSource
	renderer Renderer
	recorder Recorder
}

func NewDriver(g *Game, input InputSource, renderer Renderer) *Driver {
	return &Driver{
		game:     g,
		input:    input,
		renderer: renderer,
	}
}

// SetRecorder makes the driver hand every finished run to r.
func (d *Driver) SetRecorder(r Recorder) {
	d.recorder = r
}

func (d *Driver) Game() *Game {
	return d.game
}

// Step applies pending input, ticks once if the run is live and renders.
// It returns false when the player asked to quit.
func (d *Driver) Step() bool {
	for _, intent := range d.input.Poll() {
		switch intent {
		case IntentQuit:
			return false
		case IntentReset:
			if d.game.IsOver() {
				d.game.Reset()
				log.Printf("run %s started", d.game.RunID())
			}
		default:
			if dir, ok := intent.Direction(); ok {
				d.game.SetDirection(dir)
			}
		}
	}

	if !d.game.IsOver() {
		res := d.game.Tick()
		if res.LeveledUp {
			log.Printf("run %s: level %d, speed %d", d.game.RunID(), d.game.Level(), d.game.Speed())
		}
		if res.Died {
			d.finishRun()
		}
	}

	d.renderer.Draw(d.view())
	return true
}

// Run steps the game at its current speed until quit or ctx is done, then
// flushes the high score.
func (d *Driver) Run(ctx context.Context) error {
	defer d.game.Close()

	log.Printf("run %s started", d.game.RunID())
	var timer *time.Timer
	for d.Step() {
		interval := d.game.TickInterval()
		if timer == nil {
			timer = time.NewTimer(interval)
			defer timer.Stop()
		} else {
			timer.Reset(interval)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}

func (d *Driver) finishRun() {
	res := d.game.Result()
	log.Printf("run %s over: score %d, level %d, %s", res.RunID, res.Score, res.Level, res.Cause)
	if d.recorder == nil {
		return
	}
	if err := d.recorder.Record(res); err != nil {
		log.Printf("run %s: record: %v", res.RunID, err)
	}
}

func (d *Driver) view() View {
	v := d.game.Snapshot()
	if c, ok := d.recorder.(Counter); ok {
		v.GamesPlayed = c.Count()
	}
	return v
}
