package bench

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const schema = `CREATE TABLE IF NOT EXISTS octree_bench (
	run_id      TEXT    NOT NULL,
	points      INTEGER NOT NULL,
	runs        INTEGER NOT NULL,
	method      TEXT    NOT NULL,
	mean_us     REAL    NOT NULL,
	stddev_us   REAL    NOT NULL,
	p99_us      REAL    NOT NULL,
	mean_hops   REAL    NOT NULL,
	mismatches  INTEGER NOT NULL,
	PRIMARY KEY (run_id, points, method)
)`

// SQLiteSink stores one record per row and method in table octree_bench.
type SQLiteSink struct {
	db *sql.DB
}

// OpenSQLiteSink opens (or creates) the database at dsn and ensures the
// schema. Use ":memory:" for a throwaway database.
func OpenSQLiteSink(ctx context.Context, dsn string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("bench: open sqlite: %w", err)
	}
	// one connection keeps ":memory:" databases alive across statements
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bench: create schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

func (s *SQLiteSink) Write(ctx context.Context, r Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO octree_bench
		(run_id, points, runs, method, mean_us, stddev_us, p99_us, mean_hops, mismatches)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, m := range Methods {
		st := r.Stat(m)
		if _, err := stmt.ExecContext(ctx, r.RunID.String(), r.Points, r.Runs, string(m),
			st.Mean, st.StdDev, st.P99, r.MeanHops, r.Mismatches); err != nil {
			return fmt.Errorf("bench: insert row %d/%s: %w", r.Points, m, err)
		}
	}

	return tx.Commit()
}

// Rows reads back every row of runID ordered by batch size.
func (s *SQLiteSink) Rows(ctx context.Context, runID uuid.UUID) ([]Row, error) {
	rs, err := s.db.QueryContext(ctx, `SELECT points, runs, method, mean_us, stddev_us, p99_us, mean_hops, mismatches
		FROM octree_bench WHERE run_id = ? ORDER BY points`, runID.String())
	if err != nil {
		return nil, err
	}
	defer rs.Close()

	var (
		out   []Row
		index = map[int]int{}
	)
	for rs.Next() {
		var (
			points, runs, mismatches int
			method                   string
			st                       Stat
			hops                     float64
		)
		if err := rs.Scan(&points, &runs, &method, &st.Mean, &st.StdDev, &st.P99, &hops, &mismatches); err != nil {
			return nil, err
		}
		i, ok := index[points]
		if !ok {
			i = len(out)
			index[points] = i
			out = append(out, Row{RunID: runID, Points: points, Runs: runs, MeanHops: hops, Mismatches: mismatches})
		}
		switch Method(method) {
		case MethodOctree:
			out[i].Octree = st
		case MethodLinear:
			out[i].Linear = st
		case MethodSortLinear:
			out[i].SortLinear = st
		}
	}

	return out, rs.Err()
}

func (s *SQLiteSink) Close() error { return s.db.Close() }
