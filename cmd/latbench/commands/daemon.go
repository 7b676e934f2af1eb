package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/lattice-lang/tools/internal/logfields"
)

// DaemonCmd runs the benchmark cycle on a fixed schedule. It replaces a
// cron entry on the build box and records one run immediately on start.
type DaemonCmd struct {
	Every time.Duration `help:"Interval between benchmark runs" default:"6h"`
}

func (d *DaemonCmd) Run(g *Global, root *CLI) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	runCmd := &RunCmd{}
	job, err := scheduler.NewJob(
		gocron.DurationJob(d.Every),
		gocron.NewTask(func() {
			if err := runCmd.Run(g, root); err != nil {
				slog.Error("Scheduled benchmark run failed", logfields.Error(err))
			}
		}),
		gocron.WithName("benchmark-run"),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("schedule benchmark job: %w", err)
	}

	scheduler.Start()
	slog.Info("Benchmark daemon started",
		slog.String("job", job.ID().String()),
		slog.Duration("every", d.Every))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("Stopping benchmark daemon")
	return scheduler.Shutdown()
}
