package core

import "testing"

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(10, 20, 6, 4)

	if r.Right() != 16 {
		t.Errorf("Right() = %d, expected 16", r.Right())
	}
	if r.Bottom() != 24 {
		t.Errorf("Bottom() = %d, expected 24", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 13 || cy != 22 {
		t.Errorf("Center() = (%d, %d), expected (13, 22)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%s should be a move action", a)
		}
	}

	others := []Action{ActionNone, ActionRestart, ActionQuit, ActionPause}
	for _, a := range others {
		if a.IsMove() {
			t.Errorf("%s should not be a move action", a)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionLeft, ActionPause)

	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("FrameOf should set every given action")
	}
	if f.Has(ActionRight) {
		t.Error("Unset action should not be reported")
	}

	copied := f
	f.Clear()

	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !copied.Has(ActionLeft) {
		t.Error("a copied frame should not be affected by Clear on the original")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("Zero frame should report no actions")
	}
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero frame should record the action")
	}

	zero.Set(ActionNone)
	zero.Set(ActionRight)
	got := zero.Actions()
	if len(got) != 2 || got[0] != ActionUp || got[1] != ActionRight {
		t.Errorf("Actions() = %v, want [Up Right]", got)
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
