package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Querier is the subset of sqlx the DAOs run their statements against.
// Both *sqlx.DB and *sqlx.Tx satisfy it, so every query can run standalone
// or inside a transaction.
type Querier interface {
	sqlx.ExtContext
}

// WithTx begins a transaction, runs fn against it, then commits on success
// or rolls back on error/panic. Panics are rethrown after the rollback. The
// connection backing the transaction is always returned to the pool, on
// every exit path.
func (db *DB) WithTx(ctx context.Context, opts *sql.TxOptions, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(tx)
	return err
}
