package core

import "testing"

func TestIntentsSet(t *testing.T) {
	tests := []struct {
		action   Action
		expected Intents
	}{
		{ActionLeft, Intents{MoveLeft: true}},
		{ActionRight, Intents{MoveRight: true}},
		{ActionConfirm, Intents{Confirm: true}},
		{ActionQuit, Intents{Quit: true}},
		{ActionNone, Intents{}},
		{Action(99), Intents{}},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			var in Intents
			in.Set(tc.action)
			if in != tc.expected {
				t.Errorf("Set(%v) = %+v, expected %+v", tc.action, in, tc.expected)
			}
		})
	}
}

func TestIntentsSetAccumulates(t *testing.T) {
	var in Intents
	in.Set(ActionLeft)
	in.Set(ActionConfirm)
	if in != (Intents{MoveLeft: true, Confirm: true}) {
		t.Errorf("Set should add to existing intents, got %+v", in)
	}
}

func TestIntentsClear(t *testing.T) {
	in := Intents{MoveLeft: true, MoveRight: true, Confirm: true, Quit: true}
	in.Clear()
	if in != (Intents{}) {
		t.Errorf("Clear() left %+v", in)
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionConfirm, "Confirm"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}
