package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	contractx "github.com/tanpawarit/global-support-collab/agent/contract"
)

// Run is the handle of one collaboration. Events is single-consumer and not
// restartable.
type Run struct {
	queryID string
	events  chan contractx.Event
	done    chan struct{}
	cancel  context.CancelFunc
	flush   time.Duration

	mu       sync.Mutex
	steps    []contractx.CollaborationStep
	result   *contractx.CollaborationResult
	customer contractx.Customer
	err      error
	dropped  int
}

func newRun(queryID string, cancel context.CancelFunc, buffer int, flush time.Duration) *Run {
	if buffer < 1 {
		buffer = 1
	}
	return &Run{
		queryID: queryID,
		events:  make(chan contractx.Event, buffer),
		done:    make(chan struct{}),
		cancel:  cancel,
		flush:   flush,
	}
}

func (r *Run) QueryID() string {
	return r.queryID
}

func (r *Run) Events() <-chan contractx.Event {
	return r.events
}

// Cancel asks the run to stop at its next stage transition.
func (r *Run) Cancel() {
	r.cancel()
}

// Done is closed once the run has ended and Events is closed.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the run ends. It returns ErrCancelled for cancelled runs.
func (r *Run) Wait() (contractx.CollaborationResult, contractx.Customer, error) {
	<-r.done
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return contractx.CollaborationResult{}, contractx.Customer{}, r.err
	}
	return *r.result, r.customer, nil
}

// Steps returns the full audit trail, including steps dropped from Events.
func (r *Run) Steps() []contractx.CollaborationStep {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]contractx.CollaborationStep(nil), r.steps...)
}

// Dropped reports how many step events were discarded because the consumer
// fell behind.
func (r *Run) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dropped
}

func (r *Run) emitStep(ctx context.Context, step contractx.CollaborationStep) {
	r.mu.Lock()
	r.steps = append(r.steps, step)
	r.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	s := step
	r.publish(contractx.Event{Type: contractx.EventStep, Step: &s})
}

func (r *Run) complete(res contractx.CollaborationResult, customer contractx.Customer) {
	r.mu.Lock()
	r.result = &res
	r.customer = customer
	r.mu.Unlock()

	out := res
	r.publish(contractx.Event{Type: contractx.EventComplete, Result: &out})
}

func (r *Run) fail(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()

	r.publish(contractx.Event{Type: contractx.EventError, Err: err})
}

func (r *Run) cancelled(cause error) {
	err := cause
	if !errors.Is(err, contractx.ErrCancelled) {
		err = fmt.Errorf("%w: %v", contractx.ErrCancelled, cause)
	}
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *Run) finish() {
	close(r.events)
	r.cancel()
	close(r.done)
}

// publish hands ev to the consumer. A step waits at most one flush interval
// for room in the buffer; after that, and always for the terminal event, the
// oldest buffered step is dropped to make room.
func (r *Run) publish(ev contractx.Event) {
	select {
	case r.events <- ev:
		return
	default:
	}

	if !ev.Terminal() && r.flush > 0 {
		timer := time.NewTimer(r.flush)
		select {
		case r.events <- ev:
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	for {
		select {
		case r.events <- ev:
			return
		default:
		}
		select {
		case <-r.events:
			r.mu.Lock()
			r.dropped++
			r.mu.Unlock()
		default:
		}
	}
}
