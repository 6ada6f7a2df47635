package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanHighlights_DegenerateInputs(t *testing.T) {
	assert.Nil(t, planHighlights(0, 5, 45*time.Second))
	assert.Nil(t, planHighlights(10*time.Minute, 0, 45*time.Second))
	assert.Nil(t, planHighlights(10*time.Minute, 5, 0))
}

func TestPlanHighlights_ShortVideoYieldsSingleClip(t *testing.T) {
	// 30s video, 45s clips: one clip trimmed to the full video.
	segs := planHighlights(30*time.Second, 5, 45*time.Second)
	require.Len(t, segs, 1)
	assert.Equal(t, time.Duration(0), segs[0].Start)
	assert.Equal(t, 30*time.Second, segs[0].Duration)
}

func TestPlanHighlights_RespectsMaxClips(t *testing.T) {
	segs := planHighlights(60*time.Minute, 3, 45*time.Second)
	assert.Len(t, segs, 3)
}

func TestPlanHighlights_FewerWindowsThanMaxOnShortSource(t *testing.T) {
	// 4 minutes with 45s clips fits at most 4 windows regardless of max.
	segs := planHighlights(4*time.Minute, 10, 45*time.Second)
	assert.LessOrEqual(t, len(segs), 4)
	assert.GreaterOrEqual(t, len(segs), 1)
}

func TestPlanHighlights_OrderedAndInBounds(t *testing.T) {
	total := 20 * time.Minute
	clipLen := 45 * time.Second
	segs := planHighlights(total, 5, clipLen)
	require.NotEmpty(t, segs)

	var prev time.Duration = -1
	for _, seg := range segs {
		assert.Greater(t, seg.Start, prev, "segments must be chronological")
		assert.Equal(t, clipLen, seg.Duration)
		assert.LessOrEqual(t, seg.Start+seg.Duration, total, "segment must end inside the video")
		prev = seg.Start
	}
}

func TestBuildClipArgs(t *testing.T) {
	args := buildClipArgs("in.mp4", "out.mp4", Segment{Start: 90 * time.Second, Duration: 45 * time.Second})

	assert.Contains(t, args, "-ss")
	assert.Contains(t, args, "90.000")
	assert.Contains(t, args, "45.000")
	assert.Contains(t, args, "in.mp4")
	assert.Equal(t, "out.mp4", args[len(args)-1])
	assert.Contains(t, args, VideoCodec)
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{0, "0.000"},
		{time.Second, "1.000"},
		{1500 * time.Millisecond, "1.500"},
		{90 * time.Second, "90.000"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, formatSeconds(test.d))
	}
}

func TestClipBaseName(t *testing.T) {
	tests := []struct {
		title    string
		path     string
		expected string
	}{
		{"My Great Clip", "/work/source-ab12.mp4", "My_Great_Clip"},
		{"", "/work/source-ab12.mp4", "source-ab12"},
		{"", "/work/Some Video.mkv", "Some_Video"},
		{"///", "/work/x.mp4", "clip"},
		{"a?b*c", "/work/x.mp4", "abc"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, clipBaseName(test.title, test.path),
			"title=%q path=%q", test.title, test.path)
	}
}
