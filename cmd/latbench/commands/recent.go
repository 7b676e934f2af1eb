package commands

import (
	"context"
	"fmt"

	"github.com/lattice-lang/tools/internal/bench"
	"github.com/lattice-lang/tools/internal/config"
)

// RecentCmd lists the newest recorded results.
type RecentCmd struct {
	Limit int `help:"Maximum number of results to show" default:"20"`
}

func (r *RecentCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	bcfg := cfg.Bench

	store, err := bench.NewSQLiteStore(resolve(bcfg.RepoDir, bcfg.Database))
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	results, err := store.Recent(context.Background(), r.Limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No results recorded yet")
		return nil
	}

	fmt.Printf("%-19s  %-9s  %-9s  %-20s  %9s  %9s  %8s\n",
		"RECORDED", "COMMIT", "VERSION", "BENCHMARK", "TW MS", "BC MS", "SPEEDUP")
	for _, res := range results {
		fmt.Printf("%-19s  %-9s  %-9s  %-20s  %9.2f  %9.2f  %7.2fx\n",
			res.RecordedAt.Format("2006-01-02 15:04:05"),
			res.Commit, res.Version, res.Benchmark,
			res.TreeWalkMS, res.BytecodeMS, res.Speedup)
	}
	return nil
}
