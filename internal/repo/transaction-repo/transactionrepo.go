package transactionrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// AppendPair writes the debit and credit rows of one transfer through a
// single call so the pair can only be committed together. Callers run it
// inside the executor's atomic unit.
func (r *Repository) AppendPair(ctx context.Context, debit, credit *domain.Transaction) error {
	query := `
        INSERT INTO transactions (user_id, counterparty_account_no, amount, kind, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	for _, txn := range []*domain.Transaction{debit, credit} {
		err := r.db.QueryRow(ctx, query, txn.UserID, txn.CounterpartyAccountNo, txn.Amount, txn.Kind, txn.CreatedAt).Scan(&txn.ID)
		if err != nil {
			zap.L().Error("can't append transaction", zap.Error(err))
			return err
		}
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, counterparty_account_no, amount, kind, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.CounterpartyAccountNo, &txn.Amount, &txn.Kind, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
