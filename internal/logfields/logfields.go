package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyPattern    = "pattern"
	KeyCategory   = "category"
	KeyEntry      = "entry"
	KeyAnchor     = "anchor"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyOutput     = "output"
	KeyBenchmark  = "benchmark"
	KeyMode       = "mode"
	KeyCommit     = "commit"
	KeyVersion    = "version"
	KeySubject    = "subject"
	KeyURL        = "url"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Pattern(p string) slog.Attr      { return slog.String(KeyPattern, p) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func Entry(name string) slog.Attr     { return slog.String(KeyEntry, name) }
func Anchor(a string) slog.Attr       { return slog.String(KeyAnchor, a) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Output(o string) slog.Attr       { return slog.String(KeyOutput, o) }
func Benchmark(b string) slog.Attr    { return slog.String(KeyBenchmark, b) }
func Mode(m string) slog.Attr         { return slog.String(KeyMode, m) }
func Commit(c string) slog.Attr       { return slog.String(KeyCommit, c) }
func Version(v string) slog.Attr      { return slog.String(KeyVersion, v) }
func Subject(s string) slog.Attr      { return slog.String(KeySubject, s) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
