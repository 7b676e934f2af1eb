package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lattice-lang/tools/internal/config"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/pipeline"
)

// WatchCmd rebuilds the page whenever the source tree changes.
type WatchCmd struct {
	Source   string        `arg:"" optional:"" help:"Source directory to scan (overrides config)"`
	Output   string        `arg:"" optional:"" help:"Output HTML file (overrides config)"`
	Debounce time.Duration `help:"Quiet period before a rebuild" default:"300ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	var rec metrics.Recorder
	prec, dump := newRecorder(cfg.Docs.MetricsFile)
	if prec != nil {
		rec = prec
	}
	opts := buildOptions(cfg, w.Source, w.Output, rec)

	if _, err := os.Stat(opts.SourceDir); err != nil {
		return fmt.Errorf("source directory: %w", err)
	}

	// A failing initial build is reported but keeps the watch alive; the
	// next save gets another chance.
	if _, err := pipeline.Run(opts); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}
	dump()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, opts, w.Debounce, dump)
}

func watchLoop(ctx context.Context, opts pipeline.Options, debounce time.Duration, dump func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := watchTree(watcher, opts.SourceDir); err != nil {
		return err
	}

	rebuildReq := make(chan struct{}, 1)
	trigger := debounced(debounce, rebuildReq)
	go rebuildWorker(ctx, opts, rebuildReq, dump)

	slog.Info("Watching for source changes", logfields.Path(opts.SourceDir))
	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watch")
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, ev, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// rebuildWorker serializes rebuilds. The request channel is buffered, so
// changes arriving mid-build queue exactly one follow-up build.
func rebuildWorker(ctx context.Context, opts pipeline.Options, rebuildReq <-chan struct{}, dump func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			slog.Info("Change detected, rebuilding documentation")
			if _, err := pipeline.Run(opts); err != nil {
				slog.Warn("Rebuild failed", logfields.Error(err))
			}
			dump()
		}
	}
}

// debounced returns a trigger that enqueues one rebuild request after the
// tree has been quiet for wait.
func debounced(wait time.Duration, req chan<- struct{}) func() {
	var mu sync.Mutex
	var timer *time.Timer
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
}

func handleEvent(watcher *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if ignoreEvent(ev.Name) {
		return
	}
	if ev.Op&fsnotify.Create == fsnotify.Create {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = watchTree(watcher, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
	trigger()
}

// ignoreEvent filters events that never change the generated page: hidden
// files, editor swap files and the object files a make run drops next to
// the sources.
func ignoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") {
		return true
	}
	if strings.HasSuffix(base, ".o") || strings.HasSuffix(base, ".d") {
		return true
	}
	return false
}

func watchTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("Failed to watch directory", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}
