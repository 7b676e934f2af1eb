package metrics

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once sync.Once
	reg  *prom.Registry

	stageDuration   *prom.HistogramVec
	buildDuration   prom.Histogram
	stageResults    *prom.CounterVec
	entriesTotal    prom.Gauge
	categoriesTotal prom.Gauge
	benchDuration   *prom.HistogramVec
	benchOutcomes   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "lattice",
			Name:      "docs_stage_duration_seconds",
			Help:      "Duration of individual documentation build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "lattice",
			Name:      "docs_build_duration_seconds",
			Help:      "Total documentation build duration",
			Buckets:   prom.DefBuckets,
		})
		pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lattice",
			Name:      "docs_stage_results_total",
			Help:      "Stage result counts by outcome",
		}, []string{"stage", "result"})
		pr.entriesTotal = prom.NewGauge(prom.GaugeOpts{
			Namespace: "lattice",
			Name:      "docs_entries_total",
			Help:      "Documented entries in the last completed build",
		})
		pr.categoriesTotal = prom.NewGauge(prom.GaugeOpts{
			Namespace: "lattice",
			Name:      "docs_categories_total",
			Help:      "Non-empty categories in the last completed build",
		})
		pr.benchDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "lattice",
			Name:      "bench_run_duration_seconds",
			Help:      "Benchmark run duration by workload and execution mode",
			Buckets:   prom.DefBuckets,
		}, []string{"benchmark", "mode"})
		pr.benchOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "lattice",
			Name:      "bench_outcomes_total",
			Help:      "Benchmark measurement outcomes",
		}, []string{"outcome"})
		reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.stageResults,
			pr.entriesTotal, pr.categoriesTotal, pr.benchDuration, pr.benchOutcomes)
	})
	return pr
}

// Registry exposes the backing registry so callers can serve or gather
// the same metrics this recorder writes.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.reg
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil || p.stageResults == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) SetEntriesTotal(n int) {
	if p == nil || p.entriesTotal == nil {
		return
	}
	p.entriesTotal.Set(float64(n))
}

func (p *PrometheusRecorder) SetCategoriesTotal(n int) {
	if p == nil || p.categoriesTotal == nil {
		return
	}
	p.categoriesTotal.Set(float64(n))
}

func (p *PrometheusRecorder) ObserveBenchDuration(benchmark, mode string, d time.Duration) {
	if p == nil || p.benchDuration == nil {
		return
	}
	p.benchDuration.WithLabelValues(benchmark, mode).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBenchOutcome(outcome OutcomeLabel) {
	if p == nil || p.benchOutcomes == nil {
		return
	}
	p.benchOutcomes.WithLabelValues(string(outcome)).Inc()
}

// HTTPHandler returns a scrape handler for reg. A nil registry serves the
// process default so the endpoint never 404s on a misconfigured caller.
func HTTPHandler(reg *prom.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

// WriteTextfile renders the registry in the Prometheus text exposition
// format at path, for node_exporter textfile collection. Families come
// out of Gather sorted by name, so repeated writes with identical values
// produce identical files.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	fams, err := p.reg.Gather()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, mf := range fams {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return err
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
