package bench

import "context"

// Store persists benchmark results.
type Store interface {
	// Record inserts r unless its (commit, benchmark) pair is already
	// recorded. It reports whether a row was inserted.
	Record(ctx context.Context, r Result) (bool, error)

	// Recent returns up to limit results, newest insertions first.
	Recent(ctx context.Context, limit int) ([]Result, error)

	// Close releases the underlying storage.
	Close() error
}
