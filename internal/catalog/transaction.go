package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// executor abstracts over *sqlx.DB and *sqlx.Tx so every store operation runs
// unchanged inside or outside a transaction.
type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// WithTransaction executes fn within one transaction and hands it a
// transaction-bound Store. Every catalog mutation issued through that store
// commits atomically, or rolls back together when fn returns an error or
// panics.
//
// The scope covers database mutations only. A paired filesystem action, such
// as writing an archive file before Archive marks the record, is not covered
// by the rollback: create the file first, run the database half inside
// WithTransaction, and remove the file yourself when this returns an error.
//
// Calling WithTransaction on an already transaction-bound store joins the
// ongoing transaction instead of opening a nested one.
func (s *Store) WithTransaction(ctx context.Context, fn func(*Store) error) error {
	if _, inTx := s.exec.(*sqlx.Tx); inTx {
		return fn(s)
	}

	if s.db == nil {
		return &Error{Op: "transaction", Err: ErrNotConnected}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return wrapError("begin transaction", "", nil, err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	txStore := s.withExecutor(tx)

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return wrapError("commit transaction", "", nil, err)
	}

	return nil
}

// withExecutor returns a shallow copy of the store bound to e. The inspector
// cache is shared: the schema does not change mid-transaction.
func (s *Store) withExecutor(e executor) *Store {
	clone := *s
	clone.exec = e
	return &clone
}
