package userrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const userColumns = "id, username, account_no, balance, daily_remaining, limit_reset_at, created_at"

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.AccountNo, &user.Balance, &user.DailyRemaining, &user.LimitResetAt, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByAccountNo(ctx context.Context, accountNo int64) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE account_no = $1
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, accountNo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by account number", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// FindByIDForUpdate locks the account row for the rest of the enclosing
// transaction. Must only be called inside a TXManager unit.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) FindByAccountNoForUpdate(ctx context.Context, accountNo int64) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE account_no = $1
        FOR UPDATE
    `
	user, err := r.scanUser(r.db.QueryRow(ctx, query, accountNo))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't lock user by account number", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *Repository) UpdateBalances(ctx context.Context, user *domain.User) error {
	query := `
        UPDATE users
        SET balance = $1, daily_remaining = $2, limit_reset_at = $3
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, user.Balance, user.DailyRemaining, user.LimitResetAt, user.ID)
	if err != nil {
		zap.L().Error("can't update user balances", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Username, &user.AccountNo, &user.Balance, &user.DailyRemaining, &user.LimitResetAt, &user.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Reseed replaces all account data with count fixture accounts. Ledger rows
// and scheduled tasks reference users, so they are cleared first inside the
// same transaction.
func (r *Repository) Reseed(ctx context.Context, count int, balance, dailyLimit float64) error {
	insert := `
        INSERT INTO users (username, account_no, balance, daily_remaining, limit_reset_at)
        VALUES ($1, $2, $3, $4, now())
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, query := range []string{
			`DELETE FROM scheduled_tasks`,
			`DELETE FROM transactions`,
			`DELETE FROM users`,
		} {
			if _, err := r.db.Exec(ctx, query); err != nil {
				zap.L().Error("can't clear tables for reseed", zap.Error(err))
				return err
			}
		}
		for i := 1; i <= count; i++ {
			username := fmt.Sprintf("user%d", i)
			accountNo := int64(1000000000 + i)
			if _, err := r.db.Exec(ctx, insert, username, accountNo, balance, dailyLimit); err != nil {
				zap.L().Error("can't seed user", zap.Error(err))
				return err
			}
		}
		return nil
	})
}
