package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowMinWidth  float32 = 720
	WindowMinHeight float32 = 560
)

// Layout sizing
const (
	StatusDotDiameter float32 = 12
	LogPaneMinHeight  float32 = 180
)

// Activity log behavior
const (
	// LogLineCap bounds the in-memory log buffer; the oldest lines are
	// dropped once the pane holds this many.
	LogLineCap = 500

	LogTimeFormat = "15:04:05"
)

// Labels reused across tabs
const (
	LabelBrowse = "Browse…"
	LabelClear  = "Clear"
	LabelCopy   = "Copy"
)
