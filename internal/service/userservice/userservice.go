package userservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
)

const (
	seedCount   = 10
	seedBalance = 5000
)

var ErrUserNotFound = errors.New("user not found")

type Service struct {
	userRepo        transferservice.UserRepo
	transactionRepo transferservice.TransactionRepo
	dailyLimit      float64
}

func New(userRepo transferservice.UserRepo, transactionRepo transferservice.TransactionRepo, dailyLimit float64) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		dailyLimit:      dailyLimit,
	}
}

func (s *Service) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// SeedUsers replaces all data with the fixture accounts: user1..user10,
// account numbers 1000000001..1000000010, balance 5000 and a fresh daily
// allowance.
func (s *Service) SeedUsers(ctx context.Context) (int, error) {
	if err := s.userRepo.Reseed(ctx, seedCount, seedBalance, s.dailyLimit); err != nil {
		zap.L().Error("failed to seed users", zap.Error(err))
		return 0, err
	}
	return seedCount, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	txns, err := s.transactionRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}
