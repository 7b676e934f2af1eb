package bench

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testResult(commit, benchmark string) Result {
	return Result{
		RunID:      "run-1",
		Commit:     commit,
		Version:    "0.9.3",
		Benchmark:  benchmark,
		TreeWalkMS: 142.51,
		BytecodeMS: 42.18,
		Speedup:    3.38,
		Platform:   "linux amd64",
		RecordedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "bench", "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestRecord_NewResult_Inserted(t *testing.T) {
	store := openTestStore(t)

	inserted, err := store.Record(context.Background(), testResult("abc1234", "Function calls"))
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestRecord_SameCommitAndBenchmark_Duplicate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	inserted, err := store.Record(ctx, testResult("abc1234", "Function calls"))
	require.NoError(t, err)
	require.True(t, inserted)

	again := testResult("abc1234", "Function calls")
	again.TreeWalkMS = 999
	inserted, err = store.Record(ctx, again)
	require.NoError(t, err)
	require.False(t, inserted)

	// The first measurement stays untouched.
	results, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, 142.51, results[0].TreeWalkMS)
}

func TestRecord_SameCommitOtherBenchmark_Inserted(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, testResult("abc1234", "Function calls"))
	require.NoError(t, err)

	inserted, err := store.Record(ctx, testResult("abc1234", "Iteration"))
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestRecord_SameBenchmarkOtherCommit_Inserted(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.Record(ctx, testResult("abc1234", "Function calls"))
	require.NoError(t, err)

	inserted, err := store.Record(ctx, testResult("def5678", "Function calls"))
	require.NoError(t, err)
	require.True(t, inserted)
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, commit := range []string{"aaa1111", "bbb2222", "ccc3333"} {
		_, err := store.Record(ctx, testResult(commit, "Function calls"))
		require.NoError(t, err)
	}

	results, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "ccc3333", results[0].Commit)
	require.Equal(t, "bbb2222", results[1].Commit)
}

func TestRecent_RoundTripsFields(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := testResult("abc1234", "Map operations")
	_, err := store.Record(ctx, want)
	require.NoError(t, err)

	results, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	require.Equal(t, want.RunID, got.RunID)
	require.Equal(t, want.Commit, got.Commit)
	require.Equal(t, want.Version, got.Version)
	require.Equal(t, want.Benchmark, got.Benchmark)
	require.Equal(t, want.TreeWalkMS, got.TreeWalkMS)
	require.Equal(t, want.BytecodeMS, got.BytecodeMS)
	require.Equal(t, want.Speedup, got.Speedup)
	require.Equal(t, want.Platform, got.Platform)
	require.True(t, want.RecordedAt.Equal(got.RecordedAt))
}

func TestRecent_EmptyStore_NoResults(t *testing.T) {
	store := openTestStore(t)

	results, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, results)
}
