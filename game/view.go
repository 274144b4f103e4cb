package game

import (
	"fmt"

	"snake-levels/game/types"

	"golang.org/x/exp/slices"
)

// View is a read-only copy of everything a renderer needs.
type View struct {
	Grid      types.Grid
	Snake     []types.Cell // head first
	Direction types.Direction
	Food      types.Cell
	Obstacles []types.Cell
	Score     int
	Level     int
	Speed     int
	HighScore int
	GameOver  bool
	Cause     Cause
	RunID     string

	// Filled in by the driver when a recorder keeps history.
	GamesPlayed int
}

// Head returns the snake head.
func (v View) Head() types.Cell {
	return v.Snake[0]
}

// Blocked reports whether moving into c would end the run.
func (v View) Blocked(c types.Cell) bool {
	return !v.Grid.Contains(c) || slices.Contains(v.Obstacles, c) || slices.Contains(v.Snake, c)
}

// Snapshot copies the current state. Later ticks do not change it.
func (g *Game) Snapshot() View {
	return View{
		Grid:      g.Grid,
		Snake:     slices.Clone(g.snake.Body),
		Direction: g.snake.Direction,
		Food:      g.foodMgr.GetFood(),
		Obstacles: slices.Clone(g.obstacleMgr.Cells()),
		Score:     g.score,
		Level:     g.level,
		Speed:     g.speed,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Cause:     g.cause,
		RunID:     g.runID,
	}
}

// HUDLines is the heads-up readout shared by every front end.
func (v View) HUDLines() []string {
	lines := []string{
		fmt.Sprintf("Score: %d", v.Score),
		fmt.Sprintf("Level: %d", v.Level),
		fmt.Sprintf("High Score: %d", v.HighScore),
	}
	if v.GamesPlayed > 0 {
		lines = append(lines, fmt.Sprintf("Games: %d", v.GamesPlayed))
	}
	return lines
}

// RestartHint is the line shown under GAME OVER.
func (v View) RestartHint() string {
	cause := v.Cause.String()
	if cause != "" && cause[0] >= 'a' && cause[0] <= 'z' {
		cause = string(cause[0]-'a'+'A') + cause[1:]
	}
	return cause + " - Press R to Restart"
}
