package model

import "strings"

// StatusLevel is the traffic-light color derived from the status bar text.
type StatusLevel int

const (
	// StatusLevelAmber is the default level for any in-progress status
	StatusLevelAmber StatusLevel = iota

	// StatusLevelGreen means the app is idle and ready for input
	StatusLevelGreen

	// StatusLevelRed means the last operation reported an error
	StatusLevelRed
)

// String returns the display name for a status level
func (sl StatusLevel) String() string {
	switch sl {
	case StatusLevelGreen:
		return "Green"
	case StatusLevelRed:
		return "Red"
	default:
		return "Amber"
	}
}

// StatusLevelFor maps a status message to its traffic-light level. The
// match is case-insensitive on substrings; error keywords win over "ready".
func StatusLevelFor(text string) StatusLevel {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "error") || strings.Contains(lower, "fail") {
		return StatusLevelRed
	}
	if strings.Contains(lower, "ready") {
		return StatusLevelGreen
	}
	return StatusLevelAmber
}
