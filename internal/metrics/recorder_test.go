package metrics

import (
	"testing"
	"time"
)

// Both shipped implementations must satisfy the interface.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder_AbsorbsAllCalls(t *testing.T) {
	var rec Recorder = NoopRecorder{}
	rec.ObserveStageDuration("scan", time.Millisecond)
	rec.ObserveBuildDuration(time.Second)
	rec.IncStageResult("render", ResultWarning)
	rec.SetEntriesTotal(12)
	rec.SetCategoriesTotal(3)
	rec.ObserveBenchDuration("sieve", "bytecode", time.Millisecond)
	rec.IncBenchOutcome(OutcomeDuplicate)
}
