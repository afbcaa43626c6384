package core

import "testing"

func TestInputFrameOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRotateCW)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	want := []Action{ActionLeft, ActionRotateCW, ActionLeft}
	got := f.Actions()
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotateCW) {
		t.Error("Has(ActionRotateCW) should be true")
	}
	if f.Has(ActionHold) {
		t.Error("Has(ActionHold) should be false")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionHold)
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionHold) {
		t.Error("Clone should not be affected by Clear")
	}

	f.Set(ActionDown)
	if clone.Has(ActionDown) {
		t.Error("Clone should not see later actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRotateCCW, "RotateCCW"},
		{ActionHold, "Hold"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestColorCode(t *testing.T) {
	if ColorDefault.Code() != "" {
		t.Errorf("ColorDefault.Code() = %q, expected empty", ColorDefault.Code())
	}
	if ColorOrange.Code() != "208" {
		t.Errorf("ColorOrange.Code() = %q, expected 208", ColorOrange.Code())
	}
	if Color(200).Code() != "" {
		t.Error("out of range color should have no code")
	}
}

func TestFrameDuration(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameDuration().Milliseconds(); got != 16 {
		t.Errorf("FrameDuration() at 60fps = %dms, expected 16ms", got)
	}
	cfg.TickRate = 0
	if cfg.FrameDuration() <= 0 {
		t.Error("FrameDuration() should fall back to a positive value")
	}
}
