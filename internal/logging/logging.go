// Package logging provides structured logging for the app using zerolog,
// plus a sink registry so the UI can subscribe to the log stream and detach
// again when the agent is replaced.
package logging

import (
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// fanout is the writer behind the global logger. Every record goes to the
// base writer first, then to each registered sink in registration order, so
// sinks observe records in the order the logger emitted them.
type fanout struct {
	mu    sync.RWMutex
	base  io.Writer
	sinks map[int]io.Writer
	next  int
}

func (f *fanout) Write(p []byte) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.base != nil {
		f.base.Write(p)
	}

	ids := make([]int, 0, len(f.sinks))
	for id := range f.sinks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		f.sinks[id].Write(p)
	}
	return len(p), nil
}

func (f *fanout) add(w io.Writer) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	f.sinks[f.next] = w
	return f.next
}

func (f *fanout) remove(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sinks, id)
}

var out = &fanout{
	base:  zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"},
	sinks: make(map[int]io.Writer),
}

// Init initializes the global logger
func Init(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// AddSink attaches a writer to the log stream and returns a subscription id.
// The writer receives raw zerolog records; wrap it in a zerolog.ConsoleWriter
// for human-readable output.
func AddSink(w io.Writer) int {
	return out.add(w)
}

// RemoveSink detaches a previously added sink. Unknown ids are ignored.
func RemoveSink(id int) {
	out.remove(id)
}

// SinkCount reports the number of attached sinks
func SinkCount() int {
	out.mu.RLock()
	defer out.mu.RUnlock()
	return len(out.sinks)
}

// WithComponent creates a logger with a component field
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}
