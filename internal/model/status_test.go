package model

import "testing"

func TestStatusLevelFor(t *testing.T) {
	tests := []struct {
		text     string
		expected StatusLevel
	}{
		{"Ready", StatusLevelGreen},
		{"ready", StatusLevelGreen},
		{"Processing single video…", StatusLevelAmber},
		{"Processing batch (3 items)…", StatusLevelAmber},
		{"Scheduler running", StatusLevelAmber},
		{"Error: no such file", StatusLevelRed},
		{"task failed", StatusLevelRed},
		{"FAILURE", StatusLevelRed},
		{"Ready after error", StatusLevelRed},
		{"", StatusLevelAmber},
	}

	for _, test := range tests {
		result := StatusLevelFor(test.text)
		if result != test.expected {
			t.Errorf("StatusLevelFor(%q) = %s, expected %s", test.text, result, test.expected)
		}
	}
}

func TestStatusLevel_String(t *testing.T) {
	tests := []struct {
		level    StatusLevel
		expected string
	}{
		{StatusLevelGreen, "Green"},
		{StatusLevelAmber, "Amber"},
		{StatusLevelRed, "Red"},
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("StatusLevel.String() = %s, expected %s", result, test.expected)
		}
	}
}

func TestRunState_IsTerminal(t *testing.T) {
	tests := []struct {
		state    RunState
		expected bool
	}{
		{RunStateIdle, false},
		{RunStateRunning, false},
		{RunStateCompleted, true},
		{RunStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsTerminal()
		if result != test.expected {
			t.Errorf("RunState(%s).IsTerminal() = %v, expected %v", test.state, result, test.expected)
		}
	}
}
