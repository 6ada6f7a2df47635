package ui

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
)

// LogView renders the activity log pane. Appends may come from any
// goroutine; widget refreshes are marshalled onto the UI thread through
// the dispatch function.
type LogView struct {
	label  *widget.Label
	scroll *container.Scroll

	mu    sync.Mutex
	lines []string

	// dispatch runs a function on the UI thread. Tests replace it with a
	// synchronous call.
	dispatch func(func())
}

// NewLogView creates an empty log pane
func NewLogView() *LogView {
	label := widget.NewLabel("")
	label.Wrapping = fyne.TextWrapWord
	label.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewScroll(label)
	scroll.SetMinSize(fyne.NewSize(0, LogPaneMinHeight))

	return &LogView{
		label:    label,
		scroll:   scroll,
		dispatch: fyne.Do,
	}
}

// Object returns the scrollable canvas object for layout
func (lv *LogView) Object() fyne.CanvasObject {
	return lv.scroll
}

// Append adds one line to the pane and scrolls to the bottom. Lines past
// LogLineCap push the oldest ones out.
func (lv *LogView) Append(line string) {
	lv.mu.Lock()
	lv.lines = append(lv.lines, line)
	if len(lv.lines) > LogLineCap {
		lv.lines = lv.lines[len(lv.lines)-LogLineCap:]
	}
	text := strings.Join(lv.lines, "\n")
	lv.mu.Unlock()

	lv.dispatch(func() {
		lv.label.SetText(text)
		lv.scroll.ScrollToBottom()
	})
}

// Clear empties the pane
func (lv *LogView) Clear() {
	lv.mu.Lock()
	lv.lines = nil
	lv.mu.Unlock()

	lv.dispatch(func() {
		lv.label.SetText("")
	})
}

// Content returns the pane text, one record per line
func (lv *LogView) Content() string {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return strings.Join(lv.lines, "\n")
}

// Len returns the number of buffered lines
func (lv *LogView) Len() int {
	lv.mu.Lock()
	defer lv.mu.Unlock()
	return len(lv.lines)
}

// Sink returns a writer suitable for the log sink registry. Raw zerolog
// records are rendered human-readable before landing in the pane.
func (lv *LogView) Sink() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        &lineWriter{view: lv},
		NoColor:    true,
		TimeFormat: LogTimeFormat,
	}
}

// lineWriter buffers written bytes and forwards complete lines to the
// view. zerolog writes one record per call but the buffer keeps partial
// writes safe anyway.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	view *LogView
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line stays buffered for the next write
			w.buf.WriteString(line)
			break
		}
		if trimmed := strings.TrimRight(line, "\r\n"); trimmed != "" {
			w.view.Append(trimmed)
		}
	}
	return len(p), nil
}
