// Package catalog implements the project catalog store: a sqlite-backed
// record store with automatic schema migration and drift-tolerant filtered
// queries. All front ends consume the catalog exclusively through Store.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go sqlite driver, no CGO required

	"github.com/eleven-am/projcat/internal/config"
	"github.com/eleven-am/projcat/internal/logger"
)

// Store owns one catalog file and the single logical connection to it. It is
// a synchronous call/return API: no internal goroutines, no locking beyond
// what sqlite itself provides for a single connection.
type Store struct {
	cfg *config.Config

	db        *sqlx.DB
	exec      executor
	inspector *inspector

	log *slog.Logger
}

// New creates a Store for the catalog file named by cfg. No file or
// connection is touched until Connect.
func New(cfg *config.Config) *Store {
	return &Store{
		cfg:       cfg,
		inspector: newInspector(),
		log:       logger.DB(),
	}
}

// Connect opens the catalog file and brings its schema up to date. It is
// idempotent: calling it on a connected store is a no-op. Migration failures
// are logged and never returned; an unusable catalog location fails fast with
// ErrConfig before any connection attempt.
func (s *Store) Connect(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if err := s.cfg.EnsureDatabaseDir(); err != nil {
		return &Error{Op: "connect", Err: fmt.Errorf("%w: %v", ErrConfig, err)}
	}

	dsn := s.cfg.DatabasePath + "?_pragma=busy_timeout(5000)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return wrapError("connect", "", nil, err)
	}

	// sqlite supports one writer at a time; a larger pool only produces
	// busy/locked errors under contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return wrapError("connect", "", nil, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return wrapError("connect", "PRAGMA journal_mode = WAL", nil, err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = NORMAL"); err != nil {
		db.Close()
		return wrapError("connect", "PRAGMA synchronous = NORMAL", nil, err)
	}

	s.db = db
	s.exec = db

	s.migrate(ctx)

	return nil
}

// Close releases the connection. Safe to call on a store that never
// connected.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.exec = nil
	s.inspector.invalidate()
	return err
}

// Path returns the catalog file path this store was configured with.
func (s *Store) Path() string {
	return s.cfg.DatabasePath
}

func (s *Store) executor() (executor, error) {
	if s.exec == nil {
		return nil, &Error{Op: "execute", Err: ErrNotConnected}
	}
	return s.exec, nil
}

// execContext is the single write primitive: every mutation funnels through
// it, executes with bound parameters, and re-raises driver failures as the
// catalog Error kind carrying the statement.
func (s *Store) execContext(ctx context.Context, op, query string, args ...interface{}) (sql.Result, error) {
	e, err := s.executor()
	if err != nil {
		return nil, err
	}
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, wrapError(op, query, args, err)
	}
	return res, nil
}

// getContext fetches a single row into dest. The second return value reports
// whether a row existed; absence is not an error.
func (s *Store) getContext(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) (bool, error) {
	e, err := s.executor()
	if err != nil {
		return false, err
	}
	if err := e.GetContext(ctx, dest, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, wrapError(op, query, args, err)
	}
	return true, nil
}

// selectContext fetches all rows into dest.
func (s *Store) selectContext(ctx context.Context, op string, dest interface{}, query string, args ...interface{}) error {
	e, err := s.executor()
	if err != nil {
		return err
	}
	if err := e.SelectContext(ctx, dest, query, args...); err != nil {
		return wrapError(op, query, args, err)
	}
	return nil
}
