package logging

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer guards a bytes.Buffer so sinks can be written from the
// logging goroutine and read from the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAddRemoveSink(t *testing.T) {
	Init(false)

	before := SinkCount()
	sink := &lockedBuffer{}
	id := AddSink(sink)
	require.Equal(t, before+1, SinkCount())

	log.Info().Msg("first record")
	assert.Contains(t, sink.String(), "first record")

	RemoveSink(id)
	require.Equal(t, before, SinkCount())

	log.Info().Msg("second record")
	assert.NotContains(t, sink.String(), "second record")
}

func TestRemoveSink_UnknownID(t *testing.T) {
	Init(false)

	before := SinkCount()
	RemoveSink(99999)
	assert.Equal(t, before, SinkCount())
}

func TestSinkReplacement_NoDuplicateDelivery(t *testing.T) {
	Init(false)

	before := SinkCount()
	first := &lockedBuffer{}
	second := &lockedBuffer{}

	id := AddSink(first)
	// Remove-before-add, the way the controller swaps subscriptions on a
	// config change.
	RemoveSink(id)
	id2 := AddSink(second)
	defer RemoveSink(id2)

	log.Info().Msg("after swap")

	assert.NotContains(t, first.String(), "after swap")
	assert.Contains(t, second.String(), "after swap")
	assert.Equal(t, before+1, SinkCount())
}

func TestSinkOrderPreserved(t *testing.T) {
	Init(false)

	sink := &lockedBuffer{}
	id := AddSink(sink)
	defer RemoveSink(id)

	for _, msg := range []string{"one", "two", "three"} {
		log.Info().Msg(msg)
	}

	got := sink.String()
	first := strings.Index(got, "one")
	secondIdx := strings.Index(got, "two")
	third := strings.Index(got, "three")
	require.True(t, first >= 0 && secondIdx >= 0 && third >= 0, "all records delivered")
	assert.Less(t, first, secondIdx)
	assert.Less(t, secondIdx, third)
}
