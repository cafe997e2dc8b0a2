// Package tracedb implements the optional sqlite-backed StatsCollector
// described in SPEC_FULL.md §6.2: a concrete, persistent alternative to
// the core's other hook-only collaborators. It is constructed only by
// the CLI front-end (cmd/rtlsim); the Cycle Engine itself only ever sees
// the hooks.StatsCollector interface.
package tracedb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sarchlab/rtlsim/internal/hooks"
	"github.com/sarchlab/rtlsim/internal/model"
)

var _ hooks.StatsCollector = (*Collector)(nil)

// netSnapshot is one SignalValue this Collector watches: its assigned
// row id in the signals table, its canonical name, width, and a reader
// for its live value.
type netSnapshot struct {
	id    int64
	name  string
	nbits int
	read  func() uint64
}

// Collector persists per-tick net snapshots to a SQLite file, grounded
// in SPEC_FULL.md §6.2's two-table schema. It is safe to share across
// goroutines only to the extent database/sql itself is; the Cycle Engine
// this package serves calls it single-threaded (SPEC_FULL.md §5).
type Collector struct {
	db       *sql.DB
	nets     []netSnapshot
	tickStmt *sql.Stmt
}

// Open opens the sqlite file at path (sqlite creates it if absent; an
// existing file's tables and rows are kept) and returns a Collector with
// no tracked nets yet; call Track for every net worth snapshotting before
// RegStats.
func Open(path string) (*Collector, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("tracedb: open %s: %w", path, err)
	}

	return &Collector{db: db}, nil
}

// Track registers a net to be snapshotted on every TickStats call. id is
// the row id recorded in the signals table; read must return the net's
// current value, narrowed to a uint64 (SPEC_FULL.md's seed scenarios
// never exceed 64 bits; wider nets are simply truncated for tracing
// purposes).
func (c *Collector) Track(id model.SignalID, name string, nbits int, read func() uint64) {
	c.nets = append(c.nets, netSnapshot{id: int64(id), name: name, nbits: nbits, read: read})
}

// RegStats creates the signals/ticks schema and inserts one row per
// tracked net into signals.
func (c *Collector) RegStats() {
	ctx := context.Background()

	if _, err := c.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS signals (
			id    INTEGER PRIMARY KEY,
			name  TEXT NOT NULL,
			nbits INTEGER NOT NULL
		)`); err != nil {
		panic(fmt.Sprintf("tracedb: create signals table: %v", err))
	}

	if _, err := c.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ticks (
			cycle     INTEGER NOT NULL,
			signal_id INTEGER NOT NULL,
			value     INTEGER NOT NULL
		)`); err != nil {
		panic(fmt.Sprintf("tracedb: create ticks table: %v", err))
	}

	for _, n := range c.nets {
		if _, err := c.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO signals(id, name, nbits) VALUES (?, ?, ?)`,
			n.id, n.name, n.nbits,
		); err != nil {
			panic(fmt.Sprintf("tracedb: insert signal %s: %v", n.name, err))
		}
	}

	stmt, err := c.db.PrepareContext(ctx, `INSERT INTO ticks(cycle, signal_id, value) VALUES (?, ?, ?)`)
	if err != nil {
		panic(fmt.Sprintf("tracedb: prepare tick insert: %v", err))
	}
	c.tickStmt = stmt
}

// TickStats snapshots every tracked net's current value under cycle.
func (c *Collector) TickStats(cycle uint64) {
	ctx := context.Background()

	for _, n := range c.nets {
		if _, err := c.tickStmt.ExecContext(ctx, int64(cycle), n.id, int64(n.read())); err != nil {
			panic(fmt.Sprintf("tracedb: insert tick for %s at cycle %d: %v", n.name, cycle, err))
		}
	}
}

// TickCount reports how many tick rows have been persisted, for tests
// and offline sanity checks.
func (c *Collector) TickCount() (int, error) {
	var n int
	err := c.db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM ticks`).Scan(&n)
	return n, err
}

// Close flushes and closes the underlying sqlite connection.
func (c *Collector) Close() error {
	if c.tickStmt != nil {
		_ = c.tickStmt.Close()
	}
	return c.db.Close()
}
