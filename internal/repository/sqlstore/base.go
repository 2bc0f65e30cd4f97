package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/clinic-records/internal/repository"
	"github.com/jwalitptl/clinic-records/pkg/metrics"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db      *sqlx.DB
	metrics *metrics.Metrics
}

// NewBaseRepository creates a new base repository. m may be nil.
func NewBaseRepository(db *sqlx.DB, m *metrics.Metrics) BaseRepository {
	return BaseRepository{db: db, metrics: m}
}

// GetDB returns the database instance
func (r *BaseRepository) GetDB() *sqlx.DB {
	return r.db
}

// WithTx executes a function within a transaction
func (r *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (r *BaseRepository) observe(operation string, start time.Time, err error) {
	r.metrics.ObserveDB(operation, start, err)
}

// insert runs an INSERT ... RETURNING id statement written with ? placeholders.
func (r *BaseRepository) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var id int64
	err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id)
	return id, err
}

func (r *BaseRepository) get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	err := r.db.GetContext(ctx, dest, r.db.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *BaseRepository) selectAll(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return r.db.SelectContext(ctx, dest, r.db.Rebind(query), args...)
}

func (r *BaseRepository) exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	return err
}

func (r *BaseRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, r.db.Rebind(query), args...)
	return n, err
}

// execTx runs each statement in order inside one transaction, passing the same args.
func (r *BaseRepository) execTx(ctx context.Context, args []interface{}, statements ...string) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), args...); err != nil {
				return err
			}
		}
		return nil
	})
}
