package model

// RunState represents the state of a dispatched background task
type RunState string

const (
	// RunStateIdle means no task is in flight
	RunStateIdle RunState = "Idle"

	// RunStateRunning means a task is executing on a worker goroutine
	RunStateRunning RunState = "Running"

	// RunStateCompleted means the last task finished successfully
	RunStateCompleted RunState = "Completed"

	// RunStateFailed means the last task returned an error or panicked
	RunStateFailed RunState = "Failed"
)

// String returns the string representation of RunState
func (rs RunState) String() string {
	return string(rs)
}

// IsTerminal returns true if the state is an end-of-task outcome
func (rs RunState) IsTerminal() bool {
	return rs == RunStateCompleted || rs == RunStateFailed
}
