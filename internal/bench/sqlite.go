package bench

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ Store = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS lattice_benchmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	commit_hash TEXT NOT NULL,
	version TEXT NOT NULL,
	benchmark TEXT NOT NULL,
	tw_ms REAL NOT NULL,
	bc_ms REAL NOT NULL,
	speedup REAL NOT NULL,
	platform TEXT NOT NULL,
	recorded_at INTEGER NOT NULL,
	UNIQUE (commit_hash, benchmark)
);
CREATE INDEX IF NOT EXISTS idx_lattice_benchmarks_commit ON lattice_benchmarks(commit_hash);
`

// NewSQLiteStore opens the results database at path, creating the file,
// its directory and the schema when missing. Use ":memory:" in tests.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

// Record inserts r unless the commit already has this benchmark recorded.
func (s *SQLiteStore) Record(ctx context.Context, r Result) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO lattice_benchmarks
			(run_id, commit_hash, version, benchmark, tw_ms, bc_ms, speedup, platform, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (commit_hash, benchmark) DO NOTHING`,
		r.RunID, r.Commit, r.Version, r.Benchmark, r.TreeWalkMS, r.BytecodeMS, r.Speedup, r.Platform, r.RecordedAt.Unix(),
	)
	if err != nil {
		return false, fmt.Errorf("insert result: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return inserted > 0, nil
}

// Recent returns up to limit results, newest insertions first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, commit_hash, version, benchmark, tw_ms, bc_ms, speedup, platform, recorded_at
		FROM lattice_benchmarks
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var recorded int64
		if err := rows.Scan(&r.RunID, &r.Commit, &r.Version, &r.Benchmark,
			&r.TreeWalkMS, &r.BytecodeMS, &r.Speedup, &r.Platform, &recorded); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.RecordedAt = time.Unix(recorded, 0).UTC()
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
