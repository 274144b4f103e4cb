package ui

import (
	"snake-levels/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyIntents = []struct {
	keys   []int32
	intent game.Intent
}{
	{[]int32{rl.KeyUp, rl.KeyW}, game.IntentUp},
	{[]int32{rl.KeyDown, rl.KeyS}, game.IntentDown},
	{[]int32{rl.KeyLeft, rl.KeyA}, game.IntentLeft},
	{[]int32{rl.KeyRight, rl.KeyD}, game.IntentRight},
	{[]int32{rl.KeyR}, game.IntentReset},
	{[]int32{rl.KeyQ}, game.IntentQuit},
}

// Keyboard reads key presses from the raylib window.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Poll reports the keys pressed since the previous frame. Closing the
// window counts as quit.
func (k *Keyboard) Poll() []game.Intent {
	if rl.WindowShouldClose() {
		return []game.Intent{game.IntentQuit}
	}
	var intents []game.Intent
	for _, ki := range keyIntents {
		for _, key := range ki.keys {
			if rl.IsKeyPressed(key) {
				intents = append(intents, ki.intent)
				break
			}
		}
	}
	return intents
}
