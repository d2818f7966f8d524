package core

import (
	"testing"

	"github.com/vovakirdan/hostcost/internal/form"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionUp, "Up"},
		{ActionDown, "Down"},
		{ActionDigit, "Digit"},
		{ActionBackspace, "Backspace"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestApplySequence(t *testing.T) {
	f := form.New("a", "b", "c")

	events := []InputEvent{
		Digit('1'),
		Digit('2'),
		{Action: ActionDown},
		Digit('x'), // filtered
		Digit('9'),
		{Action: ActionDown},
		{Action: ActionDown}, // capped
		Digit('3'),
		{Action: ActionBackspace},
		Digit('4'),
		{Action: ActionUp},
		{Action: ActionUp},
		{Action: ActionUp}, // floored
		{Action: ActionBackspace},
		{Action: ActionNone},
	}

	for i, ev := range events {
		if Apply(f, ev) {
			t.Fatalf("event %d (%s) reported quit", i, ev.Action)
		}
	}

	want := []uint64{1, 9, 4}
	for i, w := range want {
		if got := f.ValueAsNumber(i); got != w {
			t.Errorf("field %d = %d, want %d", i, got, w)
		}
	}
	if f.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", f.Selected())
	}
}

func TestApplyQuit(t *testing.T) {
	f := form.New("a")
	f.SetValue(0, "5")

	if !Apply(f, InputEvent{Action: ActionQuit}) {
		t.Error("ActionQuit should report quit")
	}
	if got := f.Field(0).Value; got != "5" {
		t.Errorf("quit mutated the form: %q", got)
	}
}

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("unexpected default size %dx%d", cfg.ScreenW, cfg.ScreenH)
	}
	if cfg.Title == "" {
		t.Error("default title is empty")
	}
}
