package generator

import (
	"time"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
)

// Job is one triggered generation.
type Job struct {
	ID        string
	StartedAt time.Time

	done   chan struct{}
	result *Result
}

// Done is closed once the job's result is available.
func (j *Job) Done() <-chan struct{} { return j.done }

// Result returns the generated character, or nil while the job is running.
func (j *Job) Result() *Result {
	select {
	case <-j.done:
		return j.result
	default:
		return nil
	}
}

// Result is the outcome of a finished generation.
type Result struct {
	JobID      string            `json:"job_id"`
	Character  catalog.Character `json:"character"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
}

// Status is a point-in-time view of the simulator.
type Status struct {
	State State   `json:"state"`
	JobID string  `json:"job_id,omitempty"` // set while generating
	Last  *Result `json:"last,omitempty"`
}

// Busy reports whether a generation is in flight.
func (s Status) Busy() bool { return s.State == StateGenerating }

// EventType identifies a simulator transition.
type EventType string

const (
	// EventStarted: trigger disabled, loading shown, previous result hidden.
	EventStarted EventType = "started"
	// EventCompleted: result shown, loading hidden, trigger enabled again.
	EventCompleted EventType = "completed"
)

// Event is delivered to subscribers on every transition.
type Event struct {
	Type   EventType
	JobID  string
	State  State
	Result *Result // set on EventCompleted
}
