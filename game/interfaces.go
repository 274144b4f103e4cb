package game

import (
	"time"

	"snake-levels/game/types"
)

// HighScoreStore persists the best score across runs. Load never fails
// (bad data reads as 0) and Save is best effort.
type HighScoreStore interface {
	Load() int
	Save(score int)
}

// InputSource delivers the intents collected since the last poll.
type InputSource interface {
	Poll() []Intent
}

// Renderer draws a snapshot of the game.
type Renderer interface {
	Draw(v View)
}

// Recorder receives every finished run.
type Recorder interface {
	Record(r Result) error
}

// Intent is a discrete player command.
type Intent int

const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
	IntentReset
	IntentQuit
)

// Direction maps a movement intent to its direction.
func (i Intent) Direction() (types.Direction, bool) {
	switch i {
	case IntentUp:
		return types.Up, true
	case IntentDown:
		return types.Down, true
	case IntentLeft:
		return types.Left, true
	case IntentRight:
		return types.Right, true
	}
	return 0, false
}

// IntentFor is the movement intent for d.
func IntentFor(d types.Direction) Intent {
	switch d {
	case types.Down:
		return IntentDown
	case types.Left:
		return IntentLeft
	case types.Right:
		return IntentRight
	}
	return IntentUp
}

// Result summarises a finished run.
type Result struct {
	RunID     string
	Score     int
	Level     int
	Cause     Cause
	StartTime time.Time
	EndTime   time.Time
}

// MultiInput merges several sources. Intents keep source order, so a later
// source overrides the direction chosen by an earlier one.
type MultiInput []InputSource

func (m MultiInput) Poll() []Intent {
	var out []Intent
	for _, src := range m {
		out = append(out, src.Poll()...)
	}
	return out
}
