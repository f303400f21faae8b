package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const defaultTxTimeout = 5 * time.Second

// TxRepositories are the repositories bound to one transaction.
type TxRepositories struct {
	Lists      ListRepository
	Items      ListItemRepository
	Categories CategoryRepository
}

// Transactor runs fn inside a single SQL transaction. A non-nil error from fn
// rolls everything back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos TxRepositories) error) error
}

type sqlTransactor struct {
	db      *sql.DB
	timeout time.Duration
}

func NewTransactor(db *sql.DB) Transactor {
	return &sqlTransactor{db: db, timeout: defaultTxTimeout}
}

func (t *sqlTransactor) WithinTx(ctx context.Context, fn func(repos TxRepositories) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("transaction aborted: %w", err)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(TxRepositories{
		Lists:      NewListRepository(tx),
		Items:      NewListItemRepository(tx),
		Categories: NewCategoryRepository(tx),
	}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
