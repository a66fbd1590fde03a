package generator

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ziadkadry99/ai-heroes/internal/catalog"
)

// DefaultDelay is how long a simulated generation takes. The real pipeline
// needs 20-30 seconds; the demo shortens it.
const DefaultDelay = 3 * time.Second

// ErrBusy is returned by Trigger while a generation is in flight.
var ErrBusy = errors.New("generation already in progress")

// State is the simulator's lifecycle state.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
)

// AfterFunc schedules f to run once after d. time.AfterFunc satisfies it.
type AfterFunc func(d time.Duration, f func())

// Option configures a Simulator.
type Option func(*Simulator)

// WithDelay sets the simulated generation time.
func WithDelay(d time.Duration) Option {
	return func(s *Simulator) { s.delay = d }
}

// WithRand sets the random source used to pick characters.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rng = r }
}

// WithAfterFunc replaces the timer used for the delay.
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Simulator) { s.afterFunc = fn }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulator) { s.logger = l }
}

// Simulator fakes character generation: after a fixed delay it picks one
// catalog entry uniformly at random. At most one generation is in flight.
type Simulator struct {
	cat       *catalog.Catalog
	delay     time.Duration
	afterFunc AfterFunc
	logger    *log.Logger

	// emitMu is taken before mu and held while listeners run, so events
	// are delivered in the order of the state transitions.
	emitMu sync.Mutex

	mu        sync.Mutex
	rng       *rand.Rand
	state     State
	current   *Job
	last      *Result
	listeners map[int]func(Event)
	nextSubID int
}

// New creates an idle Simulator over cat.
func New(cat *catalog.Catalog, opts ...Option) *Simulator {
	s := &Simulator{
		cat:   cat,
		delay: DefaultDelay,
		afterFunc: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		state:     StateIdle,
		listeners: make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Delay returns the configured generation time.
func (s *Simulator) Delay() time.Duration { return s.delay }

// Trigger starts a generation. The Started event is delivered before the
// delay begins. While a job is in flight Trigger returns ErrBusy.
func (s *Simulator) Trigger() (*Job, error) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	if s.state == StateGenerating {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	job := &Job{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		done:      make(chan struct{}),
	}
	s.state = StateGenerating
	s.current = job
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Debug("generation started", "job", job.ID, "delay", s.delay)
	notify(listeners, Event{Type: EventStarted, JobID: job.ID, State: StateGenerating})

	s.afterFunc(s.delay, func() { go s.complete(job) })
	return job, nil
}

// complete picks the result, records it and returns to idle. The result is
// stored before the state flips, so a new Trigger can only start once the
// previous result is visible.
func (s *Simulator) complete(job *Job) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	c := s.cat.At(s.rng.IntN(s.cat.Len()))
	res := &Result{
		JobID:      job.ID,
		Character:  c,
		StartedAt:  job.StartedAt,
		FinishedAt: time.Now(),
	}
	job.result = res
	s.last = res
	s.current = nil
	s.state = StateIdle
	listeners := s.snapshotListeners()
	s.mu.Unlock()

	s.logger.Info("generation completed", "job", job.ID, "character", c.Name, "took", res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond))
	notify(listeners, Event{Type: EventCompleted, JobID: job.ID, State: StateIdle, Result: res})
	close(job.done)
}

// Status returns a snapshot of the simulator.
func (s *Simulator) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *Simulator) statusLocked() Status {
	st := Status{State: s.state, Last: s.last}
	if s.current != nil {
		st.JobID = s.current.ID
	}
	return st
}

// Subscribe registers fn for every future event and returns a function that
// removes it. Registration waits for any event being delivered, so fn sees
// transitions in order starting with the next one. fn must not call Trigger
// or Subscribe.
func (s *Simulator) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Wait blocks until job completes or ctx is done. Cancelling ctx stops the
// wait only; the generation still completes.
func Wait(ctx context.Context, job *Job) (*Result, error) {
	select {
	case <-job.Done():
		return job.Result(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Simulator) snapshotListeners() []func(Event) {
	out := make([]func(Event), 0, len(s.listeners))
	for _, fn := range s.listeners {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []func(Event), ev Event) {
	for _, fn := range listeners {
		fn(ev)
	}
}
