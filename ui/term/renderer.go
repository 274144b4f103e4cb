// Package term renders the game in a terminal with tcell and turns key
// events into game intents.
package term

import (
	"snake-levels/game"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so it looks square in most fonts.
const cellWidth = 2

var (
	borderStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	headStyle     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	bodyStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	foodStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorGold)
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	headRune     = '█'
	bodyRune     = '▓'
	foodRune     = '●'
	obstacleRune = '▒'
)

// Renderer draws a View on a tcell screen. The board sits at the top-left
// inside a border; the HUD goes to the right of it.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) Draw(v game.View) {
	r.screen.Clear()

	r.drawBorder(v)
	for _, o := range v.Obstacles {
		r.setCell(o.X, o.Y, obstacleRune, obstacleStyle)
	}
	r.setCell(v.Food.X, v.Food.Y, foodRune, foodStyle)
	for i := len(v.Snake) - 1; i >= 0; i-- {
		c := v.Snake[i]
		if i == 0 {
			r.setCell(c.X, c.Y, headRune, headStyle)
		} else {
			r.setCell(c.X, c.Y, bodyRune, bodyStyle)
		}
	}

	hudX := v.Grid.Width*cellWidth + 4
	for i, line := range v.HUDLines() {
		r.drawText(hudX, 1+i, line, textStyle)
	}
	if v.GameOver {
		r.drawGameOver(v)
	}

	r.screen.Show()
}

// BoardSize is the number of terminal columns and rows the board needs,
// border included.
func BoardSize(v game.View) (int, int) {
	return v.Grid.Width*cellWidth + 2, v.Grid.Height + 2
}

// CellOrigin is the screen position of the left column of grid cell (x, y).
func CellOrigin(x, y int) (int, int) {
	return 1 + x*cellWidth, 1 + y
}

func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	sx, sy := CellOrigin(x, y)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

func (r *Renderer) drawBorder(v game.View) {
	w, h := BoardSize(v)
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *Renderer) drawGameOver(v game.View) {
	w, h := BoardSize(v)
	title := "GAME OVER"
	hint := v.RestartHint()
	r.drawText((w-len(title))/2, h/2-1, title, alertStyle)
	r.drawText(max(0, (w-len(hint))/2), h/2+1, hint, textStyle)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
