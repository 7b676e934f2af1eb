// Package bench builds, times and records interpreter benchmark runs.
// Every workload is executed in both evaluation modes and the recorded
// figure per mode is the median across runs, so one noisy run cannot skew
// a commit's numbers.
package bench

import "time"

// Case names one workload: the program's file stem under the bench
// directory and the label its results are recorded under.
type Case struct {
	Name  string
	Label string
}

// DefaultSuite returns the workloads measured when the configuration does
// not name its own.
func DefaultSuite() []Case {
	return []Case{
		{Name: "fib_recursive", Label: "Function calls"},
		{Name: "nested_loops", Label: "Iteration"},
		{Name: "sieve", Label: "Array operations"},
		{Name: "map_operations", Label: "Map operations"},
		{Name: "string_concat", Label: "String operations"},
		{Name: "closures", Label: "Closures"},
		{Name: "scope_spawn", Label: "Scope/spawn"},
		{Name: "select_channels", Label: "Select channels"},
	}
}

// Result is one recorded measurement: a workload on a commit.
type Result struct {
	RunID      string    `json:"run_id"`
	Commit     string    `json:"commit"`
	Version    string    `json:"version"`
	Benchmark  string    `json:"benchmark"`
	TreeWalkMS float64   `json:"tw_ms"`
	BytecodeMS float64   `json:"bc_ms"`
	Speedup    float64   `json:"speedup"`
	Platform   string    `json:"platform"`
	RecordedAt time.Time `json:"recorded_at"`
}
