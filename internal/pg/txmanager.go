package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

//go:generate mockgen -source=txmanager.go -destination=txmanager_mock.go -package=pg

const (
	maxConflictRetries = 3
	conflictRetryDelay = 50 * time.Millisecond
)

type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey{}).(pgx.Tx)
	return tx
}

// TxBeginner is the slice of the pgx pool the manager needs; pgxpool.Pool
// satisfies it.
type TxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Manager struct {
	pool TxBeginner
}

func NewTXManager(pool TxBeginner) *Manager {
	return &Manager{pool: pool}
}

// Begin runs fn inside a serializable transaction. All writes made through
// the context-bound connection commit or roll back together. Serialization
// and deadlock failures (SQLSTATE 40001/40P01) are retried with a short
// backoff; they happen before commit, so a retry can never double-apply.
// Business errors returned by fn abort the transaction and are not retried.
func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		// Already inside an atomic unit; join it.
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(maxConflictRetries, retry.NewConstant(conflictRetryDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := m.runTx(ctx, fn)
		if isSerializationFailure(err) {
			zap.L().Warn("transaction conflict, retrying", zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
}

func (m *Manager) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
