package ui

import (
	"snake-levels/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudFontSize   = 20
	titleFontSize = 40
	hudLineHeight = 20
	hudPadding    = 5
)

var (
	gridColor     = rl.Color{R: 50, G: 50, B: 50, A: 255}
	headColor     = rl.Color{R: 0, G: 180, B: 0, A: 255}
	bodyColor     = rl.Color{R: 0, G: 120, B: 0, A: 255}
	foodColor     = rl.Color{R: 220, G: 20, B: 60, A: 255}
	obstacleColor = rl.Color{R: 255, G: 215, B: 0, A: 255}
	shadeColor    = rl.Color{R: 0, G: 0, B: 0, A: 160}
)

// Renderer draws the game into the raylib window. Calls must happen on the
// thread that opened the window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// WindowSize is the window size needed for a grid of gridSize cells.
func WindowSize(gridSize, cellSize int) (int32, int32) {
	side := int32(gridSize * cellSize)
	return side, side
}

func (r *Renderer) Draw(v game.View) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid(v)
	for i, c := range v.Snake {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		r.fillCell(c.X, c.Y, color)
	}
	r.fillCell(v.Food.X, v.Food.Y, foodColor)
	for _, o := range v.Obstacles {
		r.fillCell(o.X, o.Y, obstacleColor)
	}
	r.drawInfo(v)
	if v.GameOver {
		r.drawGameOver(v)
	}

	rl.EndDrawing()
}

func (r *Renderer) drawGrid(v game.View) {
	width := int32(v.Grid.Width) * r.cellSize
	height := int32(v.Grid.Height) * r.cellSize
	for x := int32(0); x <= width; x += r.cellSize {
		rl.DrawLine(x, 0, x, height, gridColor)
	}
	for y := int32(0); y <= height; y += r.cellSize {
		rl.DrawLine(0, y, width, y, gridColor)
	}
}

func (r *Renderer) fillCell(x, y int, color rl.Color) {
	rl.DrawRectangle(int32(x)*r.cellSize, int32(y)*r.cellSize, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawInfo(v game.View) {
	for i, line := range v.HUDLines() {
		rl.DrawText(line, hudPadding, hudPadding+int32(i)*hudLineHeight, hudFontSize, rl.White)
	}
}

func (r *Renderer) drawGameOver(v game.View) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, shadeColor)

	title := "GAME OVER"
	titleWidth := rl.MeasureText(title, titleFontSize)
	centerY := r.screenHeight / 2
	rl.DrawText(title, (r.screenWidth-titleWidth)/2, centerY-30, titleFontSize, foodColor)

	hint := v.RestartHint()
	hintWidth := rl.MeasureText(hint, hudFontSize)
	rl.DrawText(hint, (r.screenWidth-hintWidth)/2, centerY+20, hudFontSize, rl.White)
}
