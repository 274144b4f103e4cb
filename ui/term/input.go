package term

import (
	"context"
	"sync"

	"snake-levels/game"

	"github.com/gdamore/tcell/v2"
)

// Input collects key presses from a tcell screen. Pump reads events on its
// own goroutine; Poll drains what has arrived since the last call.
type Input struct {
	screen  tcell.Screen
	mu      sync.Mutex
	pending []game.Intent
}

func NewInput(screen tcell.Screen) *Input {
	return &Input{screen: screen}
}

// Pump forwards screen events until ctx is done or the screen is finalized.
func (in *Input) Pump(ctx context.Context) error {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if intent, ok := IntentFor(ev.Key(), ev.Rune()); ok {
				in.push(intent)
			}
		case *tcell.EventResize:
			in.screen.Sync()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (in *Input) push(intent game.Intent) {
	in.mu.Lock()
	in.pending = append(in.pending, intent)
	in.mu.Unlock()
}

// Poll implements game.InputSource.
func (in *Input) Poll() []game.Intent {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.pending
	in.pending = nil
	return out
}

// IntentFor maps a key to an intent. Arrows and WASD steer, R restarts,
// Q, Esc and Ctrl-C quit.
func IntentFor(key tcell.Key, r rune) (game.Intent, bool) {
	switch key {
	case tcell.KeyUp:
		return game.IntentUp, true
	case tcell.KeyDown:
		return game.IntentDown, true
	case tcell.KeyLeft:
		return game.IntentLeft, true
	case tcell.KeyRight:
		return game.IntentRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.IntentQuit, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.IntentUp, true
		case 's', 'S':
			return game.IntentDown, true
		case 'a', 'A':
			return game.IntentLeft, true
		case 'd', 'D':
			return game.IntentRight, true
		case 'r', 'R':
			return game.IntentReset, true
		case 'q', 'Q':
			return game.IntentQuit, true
		}
	}
	return 0, false
}
