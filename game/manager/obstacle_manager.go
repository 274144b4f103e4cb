package manager

import (
	"snake-levels/game/types"
)

// ObstacleManager holds the obstacle set for the current level.
type ObstacleManager struct {
	perLevel int
	food     *FoodManager
	cells    []types.Cell
	set      map[types.Cell]struct{}
}

func NewObstacleManager(perLevel int, food *FoodManager) *ObstacleManager {
	return &ObstacleManager{
		perLevel: perLevel,
		food:     food,
		set:      make(map[types.Cell]struct{}),
	}
}

// CountFor is the obstacle count for a level.
func (om *ObstacleManager) CountFor(level int) int {
	if level < 1 {
		return 0
	}
	return om.perLevel * (level - 1)
}

// Generate discards the current obstacles and places a fresh set for level.
// Cells for which occupied is true, and cells already taken by the new set,
// are skipped. Fewer obstacles are placed only when the grid runs out of room.
func (om *ObstacleManager) Generate(level int, occupied func(types.Cell) bool) {
	om.Clear()
	target := om.CountFor(level)
	blocked := func(c types.Cell) bool {
		return om.Contains(c) || occupied(c)
	}
	for len(om.cells) < target {
		c, ok := om.food.RandomFreeCell(blocked)
		if !ok {
			return
		}
		om.Add(c)
	}
}

func (om *ObstacleManager) Add(c types.Cell) {
	if om.Contains(c) {
		return
	}
	om.set[c] = struct{}{}
	om.cells = append(om.cells, c)
}

func (om *ObstacleManager) Clear() {
	om.cells = om.cells[:0]
	clear(om.set)
}

func (om *ObstacleManager) Contains(c types.Cell) bool {
	_, ok := om.set[c]
	return ok
}

func (om *ObstacleManager) Len() int {
	return len(om.cells)
}

// Cells returns the obstacles in placement order.
func (om *ObstacleManager) Cells() []types.Cell {
	return om.cells
}
