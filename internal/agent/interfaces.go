package agent

import "context"

// Agent defines the interface for the video-repurposing agent.
type Agent interface {
	// ProcessVideo repurposes a single source into short clips. An empty
	// title means no override; the clip names derive from the source.
	ProcessVideo(ctx context.Context, source, title string) error

	// BatchProcess processes the entries sequentially in the given order.
	BatchProcess(ctx context.Context, entries []string) error

	// Config returns the agent's configuration store
	Config() ConfigStore

	// Scheduler returns the agent's watch scheduler
	Scheduler() Scheduler

	// Close stops background work owned by the agent
	Close() error
}

// ConfigStore is dotted-key access to the agent configuration. Getters take
// the caller's fallback so missing keys never fail.
type ConfigStore interface {
	GetInt(key string, def int) int
	GetString(key, def string) string
	GetStringSlice(key string) []string
	SetInt(key string, value int)
	SetString(key, value string)

	// Path returns the config file path the store was opened with
	Path() string
}

// Scheduler controls the agent's continuous-pull loop. Start is idempotent
// and Stop on a stopped scheduler is a no-op.
type Scheduler interface {
	Start()
	Stop()
	Running() bool
}

// Factory constructs an agent from a configuration file path. The UI uses
// it so tests can substitute a fake agent.
type Factory func(configPath string) (Agent, error)
