package pg

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

var serializableOpts = pgx.TxOptions{IsoLevel: pgx.Serializable}

func TestManagerBeginCommitsOnSuccess(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBeginTx(serializableOpts)
	mockPool.ExpectCommit()

	m := NewTXManager(mockPool)
	calls := 0
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		calls++
		assert.NotNil(t, txFromContext(ctx))
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManagerBeginRollsBackOnError(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBeginTx(serializableOpts)
	mockPool.ExpectRollback()

	m := NewTXManager(mockPool)
	rejection := errors.New("insufficient funds")
	calls := 0
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		calls++
		return rejection
	})

	assert.ErrorIs(t, err, rejection)
	// A business rejection aborts the unit and is never retried.
	assert.Equal(t, 1, calls)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManagerBeginRetriesSerializationFailure(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBeginTx(serializableOpts)
	mockPool.ExpectCommit().WillReturnError(&pgconn.PgError{Code: "40001"})
	mockPool.ExpectBeginTx(serializableOpts)
	mockPool.ExpectCommit()

	m := NewTXManager(mockPool)
	calls := 0
	err = m.Begin(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestManagerBeginJoinsEnclosingTx(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBegin()
	outer, err := mockPool.Begin(context.Background())
	assert.NoError(t, err)

	m := NewTXManager(mockPool)
	ctx := context.WithValue(context.Background(), txKey{}, outer)
	calls := 0
	err = m.Begin(ctx, func(ctx context.Context) error {
		calls++
		assert.Equal(t, outer, txFromContext(ctx))
		return nil
	})

	// The nested unit joins the outer transaction: no second BeginTx, no
	// commit of its own.
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Serialization failure",
			err:      &pgconn.PgError{Code: "40001"},
			expected: true,
		},
		{
			name:     "Deadlock detected",
			err:      &pgconn.PgError{Code: "40P01"},
			expected: true,
		},
		{
			name:     "Wrapped serialization failure",
			err:      fmt.Errorf("tx failed: %w", &pgconn.PgError{Code: "40001"}),
			expected: true,
		},
		{
			name:     "Other pg error",
			err:      &pgconn.PgError{Code: "23505"},
			expected: false,
		},
		{
			name:     "Plain error",
			err:      errors.New("db error"),
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isSerializationFailure(tt.err))
		})
	}
}
