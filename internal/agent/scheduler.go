package agent

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SlipperySkater/clippy-ai-agent/internal/logging"
	"github.com/SlipperySkater/clippy-ai-agent/internal/platform"
)

// intervalScheduler polls the playlists listed under scheduler.watch at a
// fixed interval and processes videos it has not seen before. The first
// poll only seeds the seen set so a freshly started scheduler does not
// reprocess a playlist's entire backlog.
type intervalScheduler struct {
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	svc    *Service
	poller *platform.PlaylistPoller
	seen   map[string]struct{}
	log    zerolog.Logger
}

func newIntervalScheduler(svc *Service) *intervalScheduler {
	return &intervalScheduler{
		svc:    svc,
		poller: platform.NewPlaylistPoller(),
		seen:   make(map[string]struct{}),
		log:    logging.WithComponent("scheduler"),
	}
}

// Start launches the poll loop. Starting a running scheduler is a no-op.
func (sc *intervalScheduler) Start() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	sc.running = true
	sc.cancel = cancel
	sc.done = make(chan struct{})

	go sc.run(ctx, sc.done)
	sc.log.Info().Msg("scheduler started")
}

// Stop halts the poll loop and waits for it to exit. Stopping a stopped
// scheduler is a no-op.
func (sc *intervalScheduler) Stop() {
	sc.mu.Lock()
	if !sc.running {
		sc.mu.Unlock()
		return
	}
	sc.running = false
	cancel := sc.cancel
	done := sc.done
	sc.mu.Unlock()

	cancel()
	<-done
	sc.log.Info().Msg("scheduler stopped")
}

// Running reports whether the poll loop is active
func (sc *intervalScheduler) Running() bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.running
}

func (sc *intervalScheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	interval := sc.pollInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sc.tick(ctx, true)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sc.tick(ctx, false)
		}
	}
}

// pollInterval reads the configured interval, floored to one minute
func (sc *intervalScheduler) pollInterval() time.Duration {
	minutes := sc.svc.cfg.GetInt(KeySchedulerInterval, DefaultSchedulerInterval)
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * time.Minute
}

// tick polls every watched playlist once. When seedOnly is set, discovered
// videos are recorded without being processed.
func (sc *intervalScheduler) tick(ctx context.Context, seedOnly bool) {
	sources := sc.svc.cfg.GetStringSlice(KeySchedulerWatch)
	if len(sources) == 0 {
		return
	}

	for _, source := range sources {
		items, err := sc.poller.Poll(ctx, source)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			sc.log.Error().Err(err).Str("playlist", source).Msg("playlist poll failed")
			continue
		}

		for _, item := range items {
			if _, ok := sc.seen[item.VideoID]; ok {
				continue
			}
			sc.seen[item.VideoID] = struct{}{}

			if seedOnly {
				continue
			}

			sc.log.Info().
				Str("video", item.VideoID).
				Str("title", item.Title).
				Msg("new upload discovered")

			if err := sc.svc.ProcessVideo(ctx, item.URL, item.Title); err != nil {
				if ctx.Err() != nil {
					return
				}
				sc.log.Error().Err(err).Str("video", item.VideoID).Msg("scheduled processing failed")
			}
		}
	}
}
