package entity

import (
	"snake-levels/game/types"

	"golang.org/x/exp/slices"
)

// Snake is the player body, head first.
type Snake struct {
	Body      []types.Cell
	Direction types.Direction
}

func NewSnake(startPos types.Cell, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Cell{startPos},
		Direction: dir,
	}
}

// Advance puts newHead in front. The tail is kept when grow is set,
// so the body gets one segment longer.
func (s *Snake) Advance(newHead types.Cell, grow bool) {
	if grow {
		s.Body = slices.Insert(s.Body, 0, newHead)
		return
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

func (s *Snake) GetHead() types.Cell {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Cell {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// NextHead is the cell the head moves into on the next step.
func (s *Snake) NextHead() types.Cell {
	return s.GetHead().Add(s.Direction)
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c types.Cell) bool {
	return slices.Contains(s.Body, c)
}

// SetDirection ignores a direct reversal and reports whether dir was taken.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
