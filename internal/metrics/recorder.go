package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultWarning ResultLabel = "warning"
	ResultFatal   ResultLabel = "fatal"
)

// OutcomeLabel enumerates what happened to one benchmark measurement.
type OutcomeLabel string

const (
	OutcomeRecorded  OutcomeLabel = "recorded"
	OutcomeDuplicate OutcomeLabel = "duplicate"
	OutcomeSkipped   OutcomeLabel = "skipped"
	OutcomeFailed    OutcomeLabel = "failed"
)

// Recorder defines observability hooks for documentation builds and
// benchmark runs. Implementations may forward to Prometheus or anything
// else; callers hold a Recorder and never know which.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	SetEntriesTotal(n int)
	SetCategoriesTotal(n int)
	ObserveBenchDuration(benchmark, mode string, d time.Duration)
	IncBenchOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration)         {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)                 {}
func (NoopRecorder) IncStageResult(string, ResultLabel)                 {}
func (NoopRecorder) SetEntriesTotal(int)                                {}
func (NoopRecorder) SetCategoriesTotal(int)                             {}
func (NoopRecorder) ObserveBenchDuration(string, string, time.Duration) {}
func (NoopRecorder) IncBenchOutcome(OutcomeLabel)                       {}
