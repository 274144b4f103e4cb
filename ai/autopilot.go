// Package ai plays the game on its own for the demo mode.
package ai

import (
	"snake-levels/game"
	"snake-levels/game/types"
)

// Viewer is anything that can hand out the current game state.
type Viewer interface {
	Snapshot() game.View
}

// Autopilot is a greedy player. Each poll it looks at the three relative
// moves (left, straight, right), drops the fatal ones and heads for the
// food, preferring cells with more room around them.
type Autopilot struct {
	game Viewer
}

func NewAutopilot(g Viewer) *Autopilot {
	return &Autopilot{game: g}
}

// Poll implements game.InputSource. A finished run is restarted at once.
func (a *Autopilot) Poll() []game.Intent {
	v := a.game.Snapshot()
	if v.GameOver {
		return []game.Intent{game.IntentReset}
	}
	return []game.Intent{game.IntentFor(Choose(v))}
}

// Choose picks the next heading for v.
func Choose(v game.View) types.Direction {
	head := v.Head()
	candidates := []types.Direction{
		v.Direction,
		v.Direction.TurnLeft(),
		v.Direction.TurnRight(),
	}

	best := v.Direction
	bestScore := -1 << 30
	for _, dir := range candidates {
		next := head.Add(dir)
		if v.Blocked(next) {
			continue
		}
		score := -4*distance(next, v.Food) + freeNeighbours(v, next)
		if next == v.Food {
			score += 1000
		}
		if score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best
}

func freeNeighbours(v game.View, c types.Cell) int {
	n := 0
	for _, dir := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		if !v.Blocked(c.Add(dir)) {
			n++
		}
	}
	return n
}

func distance(a, b types.Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
