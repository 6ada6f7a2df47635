package model

import (
	"strconv"
	"strings"
)

// Default values for form fields
const (
	DefaultConfigPath = "config.yaml"
	DefaultMaxClips   = 5
	MinMaxClips       = 1
)

// Form holds the raw user-entered fields exactly as typed in the UI.
// Normalization happens through the accessor methods so the widgets can
// round-trip the original text.
type Form struct {
	Source        string // URL or local file path
	TitleOverride string // optional title applied to generated clips
	BatchFile     string // path to a batch list file, one entry per line
	ConfigFile    string // path to the agent config file
	MaxClips      string // raw max-clips entry text
}

// NormalizedSource returns the whitespace-trimmed source. An empty result
// means the form fails single-video validation.
func (f Form) NormalizedSource() string {
	return strings.TrimSpace(f.Source)
}

// NormalizedTitle returns the trimmed title override and whether it is set.
// A blank override is treated as absent, not as an empty title.
func (f Form) NormalizedTitle() (string, bool) {
	title := strings.TrimSpace(f.TitleOverride)
	return title, title != ""
}

// NormalizedBatchFile returns the whitespace-trimmed batch file path.
func (f Form) NormalizedBatchFile() string {
	return strings.TrimSpace(f.BatchFile)
}

// NormalizedConfigPath returns the config file path, falling back to
// DefaultConfigPath when the field is blank.
func (f Form) NormalizedConfigPath() string {
	path := strings.TrimSpace(f.ConfigFile)
	if path == "" {
		return DefaultConfigPath
	}
	return path
}

// ClampedMaxClips coerces the raw max-clips text to a usable count.
// Unparseable input falls back to DefaultMaxClips; parseable but
// non-positive input is floored to MinMaxClips.
func (f Form) ClampedMaxClips() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.MaxClips))
	if err != nil {
		return DefaultMaxClips
	}
	if n < MinMaxClips {
		return MinMaxClips
	}
	return n
}
