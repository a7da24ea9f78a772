package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/moneyflow/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var testCreatedAt = time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

func transferPair() (*domain.Transaction, *domain.Transaction) {
	debit := &domain.Transaction{
		UserID:                1,
		CounterpartyAccountNo: 1000000002,
		Amount:                -500,
		Kind:                  domain.TransactionDebit,
		CreatedAt:             testCreatedAt,
	}
	credit := &domain.Transaction{
		UserID:                2,
		CounterpartyAccountNo: 1000000001,
		Amount:                500,
		Kind:                  domain.TransactionCredit,
		CreatedAt:             testCreatedAt,
	}
	return debit, credit
}

func TestRepository_AppendPair(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO transactions (user_id, counterparty_account_no, amount, kind, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)

	debit, credit := transferPair()

	mock.ExpectQuery(query).
		WithArgs(1, int64(1000000002), -500.0, domain.TransactionDebit, testCreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(query).
		WithArgs(2, int64(1000000001), 500.0, domain.TransactionCredit, testCreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

	err := repo.AppendPair(context.Background(), debit, credit)

	assert.NoError(t, err)
	assert.Equal(t, 10, debit.ID)
	assert.Equal(t, 11, credit.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AppendPairSecondInsertFails(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`INSERT INTO transactions (user_id, counterparty_account_no, amount, kind, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`)

	debit, credit := transferPair()

	mock.ExpectQuery(query).
		WithArgs(1, int64(1000000002), -500.0, domain.TransactionDebit, testCreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectQuery(query).
		WithArgs(2, int64(1000000001), 500.0, domain.TransactionCredit, testCreatedAt).
		WillReturnError(errors.New("database error"))

	err := repo.AppendPair(context.Background(), debit, credit)

	assert.Error(t, err)
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, user_id, counterparty_account_no, amount, kind, created_at FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Returns transaction history",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "counterparty_account_no", "amount", "kind", "created_at"}).
					AddRow(11, 1, int64(1000000002), 300.0, domain.TransactionCredit, testCreatedAt.Add(time.Hour)).
					AddRow(10, 1, int64(1000000002), -500.0, domain.TransactionDebit, testCreatedAt)
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			expectLen: 2,
		},
		{
			name: "No transactions",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "counterparty_account_no", "amount", "kind", "created_at"})
				mock.ExpectQuery(query).WithArgs(1).WillReturnRows(rows)
			},
			expectErr: false,
			expectLen: 0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			txns, err := repo.FindByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, txns)
			} else {
				assert.NoError(t, err)
				assert.Len(t, txns, tt.expectLen)
			}
		})
	}
}
