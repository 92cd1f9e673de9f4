package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionLeft)
	f.AddClick(4, 7)
	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Errorf("Actions = %v", f.Actions)
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Click{X: 4, Y: 7}) {
		t.Errorf("Clicks = %v", f.Clicks)
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("frame not empty after Clear: %+v", f)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionSelect:  "Select",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, expected := range tests {
		if a.String() != expected {
			t.Errorf("%d.String() = %q, expected %q", a, a.String(), expected)
		}
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("TickDuration() = %s", cfg.TickDuration())
	}
	cfg.TickRate = 20
	if cfg.TickDuration() != 50*time.Millisecond {
		t.Errorf("TickDuration() at 20 = %s", cfg.TickDuration())
	}
	cfg.TickRate = 0
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("TickDuration() with zero rate = %s", cfg.TickDuration())
	}
}
