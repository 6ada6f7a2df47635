package controller

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/SlipperySkater/clippy-ai-agent/internal/agent"
	"github.com/SlipperySkater/clippy-ai-agent/internal/logging"
	"github.com/SlipperySkater/clippy-ai-agent/internal/model"
	"github.com/SlipperySkater/clippy-ai-agent/internal/platform"
)

// Status messages shown while work is in flight
const (
	StatusProcessingSingle = "Processing single video…"
	StatusSchedulerRunning = "Scheduler running"
	StatusSchedulerStopped = "Scheduler stopped"
)

// Progress milestones. These are fixed markers set on dispatch, not real
// progress from the agent.
const (
	ProgressSingleDispatched = 0.25
	ProgressBatchDispatched  = 0.35
	ProgressSchedulerRunning = 1.0
)

// Controller validates form input and drives the agent. All methods are
// called from the UI thread; the agent handle and subscription id are never
// mutated anywhere else.
type Controller struct {
	factory agent.Factory
	view    View
	runner  *Runner
	sink    io.Writer
	log     zerolog.Logger

	agent           agent.Agent
	agentConfigPath string
	sinkID          int
}

// New creates a controller. The sink is attached to the log stream for the
// lifetime of each agent; pass the UI's log pane writer.
func New(factory agent.Factory, view View, runner *Runner, sink io.Writer) *Controller {
	return &Controller{
		factory: factory,
		view:    view,
		runner:  runner,
		sink:    sink,
		log:     logging.WithComponent("gui"),
	}
}

// Agent returns the current agent handle, nil before first use
func (c *Controller) Agent() agent.Agent {
	return c.agent
}

// EnsureAgent constructs an agent for the config path unless one already
// exists for the same path. On replacement the previous log subscription is
// removed before the new one is added, so records are never delivered twice.
func (c *Controller) EnsureAgent(configPath string) error {
	if c.agent != nil && c.agentConfigPath == configPath {
		return nil
	}

	ag, err := c.factory(configPath)
	if err != nil {
		return fmt.Errorf("failed to load agent from %s: %w", configPath, err)
	}

	if c.agent != nil {
		c.agent.Close()
	}
	c.agent = ag
	c.agentConfigPath = configPath

	// Pull the config's default into the form so the user sees what the
	// agent will actually do.
	c.view.SetMaxClips(ag.Config().GetInt(agent.KeyMaxHighlights, model.DefaultMaxClips))

	if c.sinkID != 0 {
		logging.RemoveSink(c.sinkID)
	}
	c.sinkID = logging.AddSink(c.sink)

	c.log.Info().Str("config", configPath).Msg("agent ready")
	return nil
}

// ProcessSingle validates the form and dispatches a single-video run
func (c *Controller) ProcessSingle(form model.Form) {
	source := form.NormalizedSource()
	if source == "" {
		c.view.ShowWarning("Missing input", "Please enter a URL or choose a video file.")
		return
	}

	// Checked before any agent or UI work: a running task owns the
	// disabled controls and status bar until it completes.
	if c.runner.Busy() {
		c.reportBusy()
		return
	}

	if err := c.EnsureAgent(form.NormalizedConfigPath()); err != nil {
		c.view.ShowError(err.Error())
		return
	}

	c.view.SetStatus(StatusProcessingSingle)
	c.view.SetControlsEnabled(false)
	c.view.SetProgress(ProgressSingleDispatched)
	c.applyClipPreference(form)

	title, _ := form.NormalizedTitle()
	ag := c.agent
	if !c.runner.Dispatch("process_video", func(ctx context.Context) error {
		return ag.ProcessVideo(ctx, source, title)
	}) {
		c.reportBusy()
	}
}

// ProcessBatch validates and parses the batch file, then dispatches a batch run
func (c *Controller) ProcessBatch(form model.Form) {
	batchFile := form.NormalizedBatchFile()
	if batchFile == "" {
		c.view.ShowWarning("Missing batch file", "Please select a batch list file.")
		return
	}

	if c.runner.Busy() {
		c.reportBusy()
		return
	}

	entries, err := platform.ReadBatchList(batchFile)
	if err != nil {
		if errors.Is(err, platform.ErrEmptyBatch) {
			c.view.ShowWarning("Empty batch", "The selected batch file has no entries.")
		} else {
			c.view.ShowError(err.Error())
		}
		return
	}

	if err := c.EnsureAgent(form.NormalizedConfigPath()); err != nil {
		c.view.ShowError(err.Error())
		return
	}

	c.view.SetStatus(fmt.Sprintf("Processing batch (%d items)…", len(entries)))
	c.view.SetControlsEnabled(false)
	c.view.SetProgress(ProgressBatchDispatched)
	c.applyClipPreference(form)

	ag := c.agent
	if !c.runner.Dispatch("batch_process", func(ctx context.Context) error {
		return ag.BatchProcess(ctx, entries)
	}) {
		c.reportBusy()
	}
}

// StartScheduler ensures the agent and starts its continuous-pull loop
func (c *Controller) StartScheduler(form model.Form) {
	if err := c.EnsureAgent(form.NormalizedConfigPath()); err != nil {
		c.view.ShowError(err.Error())
		return
	}

	c.applyClipPreference(form)
	c.agent.Scheduler().Start()
	c.view.SetStatus(StatusSchedulerRunning)
	c.view.SetProgress(ProgressSchedulerRunning)
}

// OutputDir returns the clips directory of the current agent, or the
// default when no agent exists yet.
func (c *Controller) OutputDir() string {
	dir := agent.DefaultOutputDir
	if c.agent != nil {
		dir = c.agent.Config().GetString(agent.KeyOutputDir, agent.DefaultOutputDir)
	}
	return agent.ResolveDir(dir)
}

// StopScheduler stops the scheduler; a no-op if no agent was ever created
func (c *Controller) StopScheduler() {
	if c.agent == nil {
		return
	}

	c.agent.Scheduler().Stop()
	c.view.SetStatus(StatusSchedulerStopped)
	c.view.SetProgress(0)
}

// Close tears down the agent and its log subscription
func (c *Controller) Close() {
	if c.sinkID != 0 {
		logging.RemoveSink(c.sinkID)
		c.sinkID = 0
	}
	if c.agent != nil {
		c.agent.Close()
		c.agent = nil
	}
}

// applyClipPreference coerces the form's max-clips value, writes it back to
// the UI and into the agent config before any task launches.
func (c *Controller) applyClipPreference(form model.Form) {
	count := form.ClampedMaxClips()
	c.view.SetMaxClips(count)
	c.agent.Config().SetInt(agent.KeyMaxHighlights, count)
}

// reportBusy warns and nothing more. The in-flight task restores status,
// controls and progress when it completes.
func (c *Controller) reportBusy() {
	c.view.ShowWarning("Busy", "A task is already running. Wait for it to finish.")
}
