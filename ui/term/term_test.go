package term

import (
	"testing"

	"snake-levels/game"
	"snake-levels/game/types"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func textAt(s tcell.SimulationScreen, x, y, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = runeAt(s, x+i, y)
	}
	return string(out)
}

func testView() game.View {
	return game.View{
		Grid:      types.Grid{Width: 20, Height: 20},
		Snake:     []types.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}},
		Food:      types.Cell{X: 3, Y: 4},
		Obstacles: []types.Cell{{X: 15, Y: 2}},
		Score:     1,
		Level:     1,
		HighScore: 8,
	}
}

func TestRendererDrawsBoard(t *testing.T) {
	s := newScreen(t)
	NewRenderer(s).Draw(testView())

	cases := []struct {
		name string
		cell types.Cell
		want rune
	}{
		{"head", types.Cell{X: 10, Y: 10}, headRune},
		{"body", types.Cell{X: 10, Y: 11}, bodyRune},
		{"food", types.Cell{X: 3, Y: 4}, foodRune},
		{"obstacle", types.Cell{X: 15, Y: 2}, obstacleRune},
	}
	for _, tc := range cases {
		x, y := CellOrigin(tc.cell.X, tc.cell.Y)
		if got := runeAt(s, x, y); got != tc.want {
			t.Errorf("%s at %v: got %q, want %q", tc.name, tc.cell, got, tc.want)
		}
		if got := runeAt(s, x+1, y); got != tc.want {
			t.Errorf("%s at %v: second column %q, want %q", tc.name, tc.cell, got, tc.want)
		}
	}

	if got := runeAt(s, 0, 0); got != tcell.RuneULCorner {
		t.Errorf("top-left corner = %q", got)
	}
	hudX := 20*cellWidth + 4
	if got := textAt(s, hudX, 3, len("High Score: 8")); got != "High Score: 8" {
		t.Errorf("HUD line = %q", got)
	}
}

func TestRendererGameOverOverlay(t *testing.T) {
	s := newScreen(t)
	v := testView()
	v.GameOver = true
	v.Cause = game.CauseWall
	NewRenderer(s).Draw(v)

	w, h := BoardSize(v)
	if got := textAt(s, (w-9)/2, h/2-1, 9); got != "GAME OVER" {
		t.Errorf("overlay = %q, want GAME OVER", got)
	}
}

func TestIntentFor(t *testing.T) {
	cases := []struct {
		key  tcell.Key
		r    rune
		want game.Intent
		ok   bool
	}{
		{tcell.KeyUp, 0, game.IntentUp, true},
		{tcell.KeyDown, 0, game.IntentDown, true},
		{tcell.KeyLeft, 0, game.IntentLeft, true},
		{tcell.KeyRight, 0, game.IntentRight, true},
		{tcell.KeyRune, 'w', game.IntentUp, true},
		{tcell.KeyRune, 'D', game.IntentRight, true},
		{tcell.KeyRune, 'r', game.IntentReset, true},
		{tcell.KeyRune, 'q', game.IntentQuit, true},
		{tcell.KeyEscape, 0, game.IntentQuit, true},
		{tcell.KeyCtrlC, 0, game.IntentQuit, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyEnter, 0, 0, false},
	}
	for _, tc := range cases {
		got, ok := IntentFor(tc.key, tc.r)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("IntentFor(%v, %q) = %v, %v; want %v, %v", tc.key, tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInputPollDrains(t *testing.T) {
	in := NewInput(nil)
	in.push(game.IntentLeft)
	in.push(game.IntentReset)

	got := in.Poll()
	if len(got) != 2 || got[0] != game.IntentLeft || got[1] != game.IntentReset {
		t.Fatalf("Poll = %v", got)
	}
	if again := in.Poll(); len(again) != 0 {
		t.Errorf("second Poll = %v, want empty", again)
	}
}
