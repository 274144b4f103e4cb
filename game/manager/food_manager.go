package manager

import (
	"snake-levels/game/types"

	"golang.org/x/exp/rand"
)

// sampleRounds bounds rejection sampling as a multiple of the grid area.
// Past that the board is crowded enough that scanning is cheaper.
const sampleRounds = 4

// FoodManager owns the single food cell and the free-cell sampler shared
// with obstacle placement.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	food types.Cell
}

func NewFoodManager(grid types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// RandomFreeCell draws a uniformly random cell for which blocked is false.
// It returns false only when every cell is blocked.
func (fm *FoodManager) RandomFreeCell(blocked func(types.Cell) bool) (types.Cell, bool) {
	for i := 0; i < sampleRounds*fm.grid.Area(); i++ {
		c := types.Cell{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !blocked(c) {
			return c, true
		}
	}

	free := make([]types.Cell, 0)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			c := types.Cell{X: x, Y: y}
			if !blocked(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return types.Cell{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

// Respawn moves the food to a random free cell. It reports false when the
// grid has no room left, leaving the food where it was.
func (fm *FoodManager) Respawn(blocked func(types.Cell) bool) bool {
	c, ok := fm.RandomFreeCell(blocked)
	if !ok {
		return false
	}
	fm.food = c
	return true
}

func (fm *FoodManager) GetFood() types.Cell {
	return fm.food
}

// SetFood places food directly. Used to set up fixed positions.
func (fm *FoodManager) SetFood(c types.Cell) {
	fm.food = c
}
