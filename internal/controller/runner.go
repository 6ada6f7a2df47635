package controller

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/SlipperySkater/clippy-ai-agent/internal/model"
)

// Status text restored after every task
const StatusReady = "Ready"

// Runner executes one unit of work at a time on a worker goroutine so the
// UI thread never blocks on the agent's pipeline. Dispatch refuses overlap;
// the disabled controls make concurrent submission unlikely, the runner
// makes it impossible.
type Runner struct {
	view View
	log  zerolog.Logger

	mu          sync.Mutex
	state       model.RunState
	lastOutcome model.RunState
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

// NewRunner creates a task runner reporting through the given view
func NewRunner(view View, log zerolog.Logger) *Runner {
	return &Runner{
		view:        view,
		log:         log,
		state:       model.RunStateIdle,
		lastOutcome: model.RunStateIdle,
	}
}

// State returns the current run state
func (r *Runner) State() model.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Busy reports whether a task is currently in flight
func (r *Runner) Busy() bool {
	return r.State() == model.RunStateRunning
}

// LastOutcome returns the terminal state of the most recent task, or Idle
// when nothing has run yet.
func (r *Runner) LastOutcome() model.RunState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastOutcome
}

// Dispatch runs fn on a worker goroutine. It returns false when a task is
// already in flight. On failure the view shows an error dialog and an
// error record is logged; on success and failure alike the status returns
// to Ready, controls are re-enabled and progress resets to zero.
func (r *Runner) Dispatch(name string, fn func(context.Context) error) bool {
	r.mu.Lock()
	if r.state == model.RunStateRunning {
		r.mu.Unlock()
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.state = model.RunStateRunning
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go r.execute(ctx, cancel, name, fn)
	return true
}

func (r *Runner) execute(ctx context.Context, cancel context.CancelFunc, name string, fn func(context.Context) error) {
	defer r.wg.Done()
	defer cancel()

	err := r.runGuarded(ctx, fn)

	if err != nil {
		r.view.ShowError(err.Error())
		r.log.Error().Err(err).Str("task", name).Msg("task failed")
	}

	r.mu.Lock()
	if err != nil {
		r.lastOutcome = model.RunStateFailed
	} else {
		r.lastOutcome = model.RunStateCompleted
	}
	r.state = model.RunStateIdle
	r.cancel = nil
	r.mu.Unlock()

	r.view.SetStatus(StatusReady)
	r.view.SetControlsEnabled(true)
	r.view.SetProgress(0)
}

// runGuarded turns a panic inside the task into an ordinary error so the
// UI always recovers.
func (r *Runner) runGuarded(ctx context.Context, fn func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return fn(ctx)
}

// Shutdown cancels any in-flight task and waits for it to finish. Used when
// the window closes.
func (r *Runner) Shutdown() {
	r.mu.Lock()
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Wait blocks until the in-flight task, if any, has finished
func (r *Runner) Wait() {
	r.wg.Wait()
}
