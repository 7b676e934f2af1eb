package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lattice-lang/tools/internal/config"
	"github.com/lattice-lang/tools/internal/logfields"
	"github.com/lattice-lang/tools/internal/metrics"
	"github.com/lattice-lang/tools/internal/pipeline"
)

// ServeCmd builds the page and serves its directory over HTTP, the quick
// way to eyeball the generated docs next to the rest of the site files.
type ServeCmd struct {
	Source string `arg:"" optional:"" help:"Source directory to scan (overrides config)"`
	Output string `arg:"" optional:"" help:"Output HTML file (overrides config)"`
	Addr   string `help:"Listen address" default:":8080"`
}

func (s *ServeCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	var rec metrics.Recorder
	prec, dump := newRecorder(cfg.Docs.MetricsFile)
	if prec != nil {
		rec = prec
	}
	opts := buildOptions(cfg, s.Source, s.Output, rec)

	if _, err := pipeline.Run(opts); err != nil {
		return err
	}
	dump()

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(filepath.Dir(opts.Output))))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if prec != nil {
		mux.Handle("/metrics", metrics.HTTPHandler(prec.Registry()))
	}

	server := &http.Server{
		Addr:         s.Addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	slog.Info("Serving documentation",
		slog.String("addr", s.Addr),
		logfields.File(filepath.Base(opts.Output)))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
