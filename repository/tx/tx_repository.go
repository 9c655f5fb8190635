package tx

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type txRepo struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &txRepo{db: db}
}

// BeginTx opens a READ COMMITTED transaction so locking reads see rows
// committed by writers that held the lock before us.
func (r *txRepo) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
}

func (r *txRepo) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *txRepo) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}

// Run executes fn inside a transaction. fn's error (or a failed commit)
// rolls the transaction back; a panic in fn rolls back and re-panics.
func Run(ctx context.Context, repo TxRepository, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = repo.RollbackTx(tx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = repo.CommitTx(tx); err != nil {
		return err
	}
	committed = true
	return nil
}
