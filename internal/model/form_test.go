package model

import "testing"

func TestForm_NormalizedSource(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"https://youtube.com/watch?v=abc", "https://youtube.com/watch?v=abc"},
		{"  /home/user/video.mp4  ", "/home/user/video.mp4"},
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
	}

	for _, test := range tests {
		form := Form{Source: test.source}
		if result := form.NormalizedSource(); result != test.expected {
			t.Errorf("NormalizedSource() with source=%q = %q, expected %q", test.source, result, test.expected)
		}
	}
}

func TestForm_NormalizedTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
		set      bool
	}{
		{"My Clip", "My Clip", true},
		{"  spaced  ", "spaced", true},
		{"", "", false},
		{"   ", "", false},
	}

	for _, test := range tests {
		form := Form{TitleOverride: test.title}
		result, set := form.NormalizedTitle()
		if result != test.expected || set != test.set {
			t.Errorf("NormalizedTitle() with title=%q = (%q, %v), expected (%q, %v)",
				test.title, result, set, test.expected, test.set)
		}
	}
}

func TestForm_NormalizedConfigPath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"custom.yaml", "custom.yaml"},
		{"  custom.yaml  ", "custom.yaml"},
		{"", DefaultConfigPath},
		{"   ", DefaultConfigPath},
	}

	for _, test := range tests {
		form := Form{ConfigFile: test.path}
		if result := form.NormalizedConfigPath(); result != test.expected {
			t.Errorf("NormalizedConfigPath() with path=%q = %q, expected %q", test.path, result, test.expected)
		}
	}
}

func TestForm_ClampedMaxClips(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{"3", 3},
		{" 12 ", 12},
		{"1", 1},
		{"0", 1},
		{"-5", 1},
		{"abc", DefaultMaxClips},
		{"", DefaultMaxClips},
		{"2.5", DefaultMaxClips},
	}

	for _, test := range tests {
		form := Form{MaxClips: test.raw}
		if result := form.ClampedMaxClips(); result != test.expected {
			t.Errorf("ClampedMaxClips() with raw=%q = %d, expected %d", test.raw, result, test.expected)
		}
	}
}
