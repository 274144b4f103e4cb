package ui

import "testing"

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(20, 20)
	if w != 400 || h != 400 {
		t.Errorf("WindowSize = %dx%d, want 400x400", w, h)
	}
}
