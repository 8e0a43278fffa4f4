// Package attempt records the timed derivation steps of one task attempt.
package attempt

import (
	"strings"
	"time"
)

// Meta is the tagged per-kind payload of a step. Exactly one concrete
// type exists per interaction kind; a plain text step carries no Meta.
type Meta interface {
	Kind() string
}

// HotspotClick marks a SpotTheError selection.
type HotspotClick struct {
	HotspotID string
	Label     string
}

func (HotspotClick) Kind() string { return "hotspot-click" }

// SequenceSubmit marks a Sequence ordering submission.
type SequenceSubmit struct {
	ItemIDs []string
}

func (SequenceSubmit) Kind() string { return "sequence-submit" }

// Step is one attempt entry: free text, when it was committed, and how
// long the learner reflected since the previous step.
type Step struct {
	Content   string
	Timestamp time.Time
	Duration  time.Duration
	Meta      Meta
}

// Recorder accumulates an ordered, append-only sequence of steps for a
// single attempt. It reads the wall clock and does no I/O.
type Recorder struct {
	now       func() time.Time
	steps     []Step
	startedAt time.Time
	lastAt    time.Time
	finalized bool
}

// NewRecorder starts recording an attempt at the current wall-clock time.
func NewRecorder() *Recorder {
	return newRecorder(time.Now)
}

// newRecorder injects the clock for tests.
func newRecorder(now func() time.Time) *Recorder {
	start := now()
	return &Recorder{
		now:       now,
		startedAt: start,
		lastAt:    start,
	}
}

// Append commits one step. Content that is empty after trimming is
// rejected: the sequence is left unchanged and Append reports false.
// Otherwise the step's duration is the time since the previous commit
// (or since the attempt opened, for the first step).
func (r *Recorder) Append(content string, meta Meta) bool {
	if r.finalized {
		return false
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return false
	}

	now := r.now()
	r.steps = append(r.steps, Step{
		Content:   content,
		Timestamp: now,
		Duration:  now.Sub(r.lastAt),
		Meta:      meta,
	})
	r.lastAt = now
	return true
}

// Len returns the number of committed steps.
func (r *Recorder) Len() int {
	return len(r.steps)
}

// Steps returns a copy of the committed steps in submission order.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Elapsed returns the wall-clock time since the attempt opened.
func (r *Recorder) Elapsed() time.Duration {
	return r.now().Sub(r.startedAt)
}

// Finalize flushes any uncommitted input text as a final step and returns
// the full ordered sequence together with the total elapsed time. Blank
// pending text is ignored. Further Append calls after Finalize are no-ops.
func (r *Recorder) Finalize(pending string) ([]Step, time.Duration) {
	if !r.finalized {
		r.Append(pending, nil)
		r.finalized = true
	}
	return r.Steps(), r.Elapsed()
}
