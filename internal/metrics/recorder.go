package metrics

import "time"

// OutcomeLabel enumerates final run outcomes.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for a generator run.
type Recorder interface {
	IncPagesWritten()
	IncCollisions(n int)
	ObserveRenderDuration(d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncRunOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncPagesWritten()                   {}
func (NoopRecorder) IncCollisions(int)                  {}
func (NoopRecorder) ObserveRenderDuration(time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)    {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)          {}
