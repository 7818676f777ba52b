package db

import (
	"context"
	"database/sql"
	"fmt"
)

// TxRunner scopes a unit of work to one transaction. fn's error rolls the
// transaction back; a nil error commits it.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type txRunnerHandler struct {
	Db *sql.DB
}

func NewTxRunner(db *sql.DB) TxRunner {
	return txRunnerHandler{
		Db: db,
	}
}

func (h txRunnerHandler) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// NoopTxRunner hands fn a nil transaction. Used with mocked repositories.
type NoopTxRunner struct{}

func (NoopTxRunner) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}
