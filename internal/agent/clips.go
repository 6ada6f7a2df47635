package agent

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// FFmpeg constants for clip rendering
const (
	VideoCodec  = "libx264"
	VideoPreset = "veryfast"
	VideoCRF    = "23"

	AudioCodec   = "aac"
	AudioBitrate = "128k"

	FastStartFlag = "+faststart"

	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"

	OutputExtensionMP4 = ".mp4"
)

// Highlight planning constants. A lead/tail margin is skipped so clips avoid
// intros and outros.
const (
	EdgeMarginFraction = 0.05
)

// Segment is one planned highlight window within the source video
type Segment struct {
	Start    time.Duration
	Duration time.Duration
}

// planHighlights picks up to maxClips windows of clipLen, evenly spaced
// across the video with the edge margins skipped. Windows are returned in
// chronological order and never extend past the end of the video.
func planHighlights(total time.Duration, maxClips int, clipLen time.Duration) []Segment {
	if total <= 0 || maxClips < 1 || clipLen <= 0 {
		return nil
	}

	margin := time.Duration(float64(total) * EdgeMarginFraction)
	usable := total - 2*margin

	if usable <= clipLen {
		// Short video: one clip from the start, trimmed to what exists.
		length := clipLen
		if length > total {
			length = total
		}
		return []Segment{{Start: 0, Duration: length}}
	}

	count := int(usable / clipLen)
	if count > maxClips {
		count = maxClips
	}
	if count < 1 {
		count = 1
	}

	segments := make([]Segment, 0, count)
	if count == 1 {
		segments = append(segments, Segment{Start: margin, Duration: clipLen})
		return segments
	}

	stride := (usable - clipLen) / time.Duration(count-1)
	for i := 0; i < count; i++ {
		segments = append(segments, Segment{
			Start:    margin + time.Duration(i)*stride,
			Duration: clipLen,
		})
	}
	return segments
}

// buildClipArgs builds the ffmpeg command arguments for cutting one segment
func buildClipArgs(inputPath, outputPath string, seg Segment) []string {
	return []string{
		"-y",
		"-ss", formatSeconds(seg.Start),
		"-t", formatSeconds(seg.Duration),
		"-i", inputPath,
		"-c:v", VideoCodec,
		"-preset", VideoPreset,
		"-crf", VideoCRF,
		"-c:a", AudioCodec,
		"-b:a", AudioBitrate,
		"-movflags", FastStartFlag,
		"-nostats",
		outputPath,
	}
}

// formatSeconds renders a duration as fractional seconds for ffmpeg
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

// probeDuration gets the duration of a video file using ffprobe
func (s *Service) probeDuration(ctx context.Context, filePath string) (time.Duration, error) {
	bin := s.cfg.GetString(KeyFFprobeBinary, DefaultFFprobeBinary)
	cmd := exec.CommandContext(ctx, bin,
		"-v", FFprobeLogLevel,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		filePath)

	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	durationStr := strings.TrimSpace(string(output))
	seconds, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// cutClip renders one segment of the input into outputPath
func (s *Service) cutClip(ctx context.Context, inputPath, outputPath string, seg Segment) error {
	bin := s.cfg.GetString(KeyFFmpegBinary, DefaultFFmpegBinary)
	args := buildClipArgs(inputPath, outputPath, seg)

	cmd := exec.CommandContext(ctx, bin, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, lastLine(out))
	}
	return nil
}

// lastLine extracts the final non-empty line of tool output for error
// messages, ffmpeg puts the reason there.
func lastLine(out []byte) string {
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[len(lines)-1])
}
