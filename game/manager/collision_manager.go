package manager

import (
	"snake-levels/game/entity"
	"snake-levels/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	ObstacleCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case ObstacleCollision:
		return "obstacle"
	case SelfCollision:
		return "self"
	}
	return "unknown"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision runs the wall, obstacle and self checks in that order
// and returns the first that hits. The snake body is the pre-move body,
// tail included.
func (cm *CollisionManager) CheckCollision(pos types.Cell, snake *entity.Snake, obstacles *ObstacleManager) CollisionType {
	if cm.isWallCollision(pos) {
		return WallCollision
	}
	if obstacles != nil && obstacles.Contains(pos) {
		return ObstacleCollision
	}
	if snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Cell, food types.Cell) bool {
	return pos == food
}
