package agent

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SlipperySkater/clippy-ai-agent/internal/logging"
	"github.com/SlipperySkater/clippy-ai-agent/internal/platform"
)

// Source file constants
const (
	SourcePrefix = "source-"

	// Partial-download leftovers that must never be treated as the
	// fetched source.
	PartExtension = ".part"
	YtdlExtension = ".ytdl"
)

// Service is the default agent implementation
type Service struct {
	cfg   *Store
	sched *intervalScheduler
	log   zerolog.Logger
}

// New creates an agent from the given configuration file path
func New(configPath string) (*Service, error) {
	cfg, err := OpenStore(configPath)
	if err != nil {
		return nil, err
	}

	s := &Service{
		cfg: cfg,
		log: logging.WithComponent("agent"),
	}
	s.sched = newIntervalScheduler(s)

	s.log.Info().Str("config", configPath).Msg("agent initialized")
	return s, nil
}

// Config returns the agent's configuration store
func (s *Service) Config() ConfigStore {
	return s.cfg
}

// Scheduler returns the agent's watch scheduler
func (s *Service) Scheduler() Scheduler {
	return s.sched
}

// Close stops the scheduler
func (s *Service) Close() error {
	s.sched.Stop()
	return nil
}

// ProcessVideo fetches the source if needed, plans highlight windows and
// cuts one clip per window into the output directory.
func (s *Service) ProcessVideo(ctx context.Context, source, title string) error {
	s.log.Info().Str("source", source).Msg("processing video")

	workDir := ResolveDir(s.cfg.GetString(KeyWorkDir, DefaultWorkDir))
	outputDir := ResolveDir(s.cfg.GetString(KeyOutputDir, DefaultOutputDir))
	for _, dir := range []string{workDir, outputDir} {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	localPath, err := s.resolveSource(ctx, source, workDir)
	if err != nil {
		return err
	}

	total, err := s.probeDuration(ctx, localPath)
	if err != nil {
		return err
	}

	maxClips := s.cfg.GetInt(KeyMaxHighlights, DefaultMaxHighlights)
	clipLen := secondsSetting(s.cfg, KeyClipDuration, DefaultClipDurationSec)
	segments := planHighlights(total, maxClips, clipLen)
	if len(segments) == 0 {
		return fmt.Errorf("no highlight windows planned for %s", source)
	}

	s.log.Info().
		Dur("duration", total).
		Int("clips", len(segments)).
		Msg("highlight windows planned")

	base := clipBaseName(title, localPath)
	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			return err
		}

		outputPath := filepath.Join(outputDir, fmt.Sprintf("%s-clip%02d%s", base, i+1, OutputExtensionMP4))
		if err := s.cutClip(ctx, localPath, outputPath, seg); err != nil {
			return fmt.Errorf("failed to cut clip %d: %w", i+1, err)
		}

		s.log.Info().
			Str("output", outputPath).
			Dur("start", seg.Start).
			Dur("length", seg.Duration).
			Msg("clip rendered")
	}

	s.log.Info().Str("source", source).Int("clips", len(segments)).Msg("video processed")
	return nil
}

// BatchProcess processes entries sequentially in order. Per-entry failures
// are logged and counted; the batch fails only when every entry failed or
// the context was cancelled.
func (s *Service) BatchProcess(ctx context.Context, entries []string) error {
	s.log.Info().Int("entries", len(entries)).Msg("processing batch")

	failed := 0
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.ProcessVideo(ctx, entry, ""); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failed++
			s.log.Error().Err(err).Int("entry", i+1).Str("source", entry).Msg("batch entry failed")
		}
	}

	if failed == len(entries) && len(entries) > 0 {
		return fmt.Errorf("all %d batch entries failed", len(entries))
	}

	s.log.Info().Int("entries", len(entries)).Int("failed", failed).Msg("batch complete")
	return nil
}

// resolveSource returns a local path for the source, fetching remote URLs
// into workDir via the yt-dlp CLI.
func (s *Service) resolveSource(ctx context.Context, source, workDir string) (string, error) {
	if !isRemote(source) {
		if _, err := os.Stat(source); err != nil {
			return "", fmt.Errorf("source file does not exist: %w", err)
		}
		return source, nil
	}

	id := uuid.NewString()[:8]
	template := filepath.Join(workDir, SourcePrefix+id+".%(ext)s")

	bin := s.cfg.GetString(KeyYtdlpBinary, DefaultYtdlpBinary)
	cmd := exec.CommandContext(ctx, bin,
		"--no-playlist",
		"--restrict-filenames",
		"--force-overwrites",
		"-o", template,
		source)

	s.log.Info().Str("url", source).Msg("fetching source")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("yt-dlp failed: %w: %s", err, lastLine(out))
	}

	matches, err := filepath.Glob(filepath.Join(workDir, SourcePrefix+id+".*"))
	if err != nil {
		return "", err
	}
	for _, match := range matches {
		ext := filepath.Ext(match)
		if ext == PartExtension || ext == YtdlExtension {
			continue
		}
		return match, nil
	}
	return "", fmt.Errorf("fetched source not found in %s", workDir)
}

// ResolveDir roots relative directory settings at the user workspace so a
// config with bare names like "clips" stays portable. Absolute paths pass
// through untouched.
func ResolveDir(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	base, err := platform.DefaultWorkspaceDir()
	if err != nil {
		return dir
	}
	return filepath.Join(base, dir)
}

// isRemote reports whether the source is a URL rather than a local path
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// clipBaseName derives the output file stem from the title override, or the
// source file name when no title is set.
func clipBaseName(title, localPath string) string {
	base := strings.TrimSpace(title)
	if base == "" {
		name := filepath.Base(localPath)
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "clip"
	}
	return b.String()
}

// secondsSetting reads an integer seconds value from the config as a duration
func secondsSetting(cfg *Store, key string, def int) time.Duration {
	return time.Duration(cfg.GetInt(key, def)) * time.Second
}
