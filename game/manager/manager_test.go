package manager

import (
	"testing"

	"snake-levels/game/entity"
	"snake-levels/game/types"

	"golang.org/x/exp/rand"
)

func newFood(size int, seed uint64) *FoodManager {
	return NewFoodManager(types.Grid{Width: size, Height: size}, rand.New(rand.NewSource(seed)))
}

func TestCheckCollisionOrder(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	cm := NewCollisionManager(grid)
	snake := &entity.Snake{Body: []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}}
	obstacles := NewObstacleManager(3, newFood(10, 1))
	obstacles.Add(types.Cell{X: 0, Y: 0})
	obstacles.Add(types.Cell{X: 6, Y: 5})

	cases := []struct {
		name string
		pos  types.Cell
		want CollisionType
	}{
		{"free", types.Cell{X: 4, Y: 5}, NoCollision},
		{"left wall", types.Cell{X: -1, Y: 3}, WallCollision},
		{"bottom wall", types.Cell{X: 3, Y: 10}, WallCollision},
		{"obstacle", types.Cell{X: 0, Y: 0}, ObstacleCollision},
		{"obstacle on body wins", types.Cell{X: 6, Y: 5}, ObstacleCollision},
		{"body", types.Cell{X: 5, Y: 6}, SelfCollision},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cm.CheckCollision(tc.pos, snake, obstacles); got != tc.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestRandomFreeCellAvoidsBlocked(t *testing.T) {
	fm := newFood(5, 7)
	blocked := func(c types.Cell) bool { return c.X < 4 }
	for i := 0; i < 50; i++ {
		c, ok := fm.RandomFreeCell(blocked)
		if !ok {
			t.Fatal("expected a free cell")
		}
		if c.X != 4 {
			t.Fatalf("got blocked cell %v", c)
		}
	}
}

func TestRandomFreeCellNearlyFull(t *testing.T) {
	fm := newFood(20, 3)
	only := types.Cell{X: 13, Y: 17}
	c, ok := fm.RandomFreeCell(func(c types.Cell) bool { return c != only })
	if !ok || c != only {
		t.Fatalf("got %v, %v; want %v", c, ok, only)
	}
}

func TestRandomFreeCellFull(t *testing.T) {
	fm := newFood(3, 3)
	if _, ok := fm.RandomFreeCell(func(types.Cell) bool { return true }); ok {
		t.Fatal("expected no free cell on a full grid")
	}
	fm.SetFood(types.Cell{X: 1, Y: 1})
	if fm.Respawn(func(types.Cell) bool { return true }) {
		t.Fatal("respawn on a full grid should fail")
	}
	if fm.GetFood() != (types.Cell{X: 1, Y: 1}) {
		t.Errorf("food moved to %v", fm.GetFood())
	}
}

func TestGenerateObstacles(t *testing.T) {
	fm := newFood(20, 11)
	fm.SetFood(types.Cell{X: 2, Y: 2})
	snake := entity.NewSnake(types.Cell{X: 10, Y: 10}, types.Up)
	om := NewObstacleManager(3, fm)
	occupied := func(c types.Cell) bool {
		return snake.Occupies(c) || c == fm.GetFood()
	}

	for level := 1; level <= 6; level++ {
		om.Generate(level, occupied)
		if om.Len() != 3*(level-1) {
			t.Fatalf("level %d: %d obstacles, want %d", level, om.Len(), 3*(level-1))
		}
		seen := make(map[types.Cell]bool)
		for _, c := range om.Cells() {
			if seen[c] {
				t.Fatalf("level %d: duplicate obstacle %v", level, c)
			}
			seen[c] = true
			if occupied(c) {
				t.Fatalf("level %d: obstacle %v on snake or food", level, c)
			}
			if !om.Contains(c) {
				t.Fatalf("level %d: %v missing from set", level, c)
			}
		}
	}
}

func TestGenerateReplacesPreviousSet(t *testing.T) {
	om := NewObstacleManager(3, newFood(20, 5))
	om.Add(types.Cell{X: 1, Y: 1})
	om.Generate(1, func(types.Cell) bool { return false })
	if om.Len() != 0 || om.Contains(types.Cell{X: 1, Y: 1}) {
		t.Fatalf("level 1 should clear obstacles, got %v", om.Cells())
	}
}

func TestGenerateStopsWhenGridFull(t *testing.T) {
	om := NewObstacleManager(3, newFood(2, 5))
	om.Generate(3, func(types.Cell) bool { return false })
	if om.Len() != 4 {
		t.Fatalf("expected every cell filled, got %d", om.Len())
	}
}
