// Package metrics provides observability hooks for documentation builds
// and benchmark runs.
//
// The package follows the Null Object pattern: components receive a
// Recorder through dependency injection and default to NoopRecorder, so
// nothing in the pipeline ever checks whether metrics are enabled.
//
//	opts.Recorder = metrics.NewPrometheusRecorder(nil)
//	summary, err := pipeline.Run(opts)
//
// The Prometheus implementation registers on a caller-supplied registry
// and can dump it in text exposition format for node_exporter textfile
// collection, which suits short-lived CLI processes better than a scrape
// endpoint.
package metrics
