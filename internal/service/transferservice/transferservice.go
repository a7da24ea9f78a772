package transferservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/pg"
	"github.com/GlebRadaev/moneyflow/pkg/clock"
)

//go:generate mockgen -source=transferservice.go -destination=transferservice_mock.go -package=transferservice

var (
	ErrInvalidAmount        = errors.New("invalid transfer amount")
	ErrSameAccount          = errors.New("cannot transfer to the same account")
	ErrSenderNotFound       = errors.New("sender not found")
	ErrReceiverNotFound     = errors.New("receiver account not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrDailyLimitExceeded   = errors.New("transfer exceeds daily limit")
	ErrInvalidScheduledDate = errors.New("scheduled date must be in the future")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByAccountNo(ctx context.Context, accountNo int64) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	FindByAccountNoForUpdate(ctx context.Context, accountNo int64) (*domain.User, error)
	UpdateBalances(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	Reseed(ctx context.Context, count int, balance, dailyLimit float64) error
}

type TransactionRepo interface {
	AppendPair(ctx context.Context, debit, credit *domain.Transaction) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type TransferResult struct {
	SenderUsername      string  `json:"sender_username"`
	SenderBalance       float64 `json:"sender_balance"`
	DailyLimitRemaining float64 `json:"daily_limit_remaining"`
	ReceiverUsername    string  `json:"receiver_username"`
	ReceiverBalance     float64 `json:"receiver_balance"`
	Amount              float64 `json:"amount"`
}

type Service struct {
	userRepo        UserRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	clock           clock.Clock
	dailyLimit      float64
}

func New(userRepo UserRepo, transactionRepo TransactionRepo, txManager pg.TXManager, clk clock.Clock, dailyLimit float64) *Service {
	return &Service{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		clock:           clk,
		dailyLimit:      dailyLimit,
	}
}

// Transfer moves amount from the sender to the receiver as one atomic unit:
// lock both accounts, refresh the sender's daily window, validate, mutate
// both balances and append the debit/credit ledger pair. Any error rolls the
// whole unit back. Both the immediate endpoint and the scheduled task
// dispatcher go through here, so the business rules cannot diverge.
func (s *Service) Transfer(ctx context.Context, senderID int, receiverAccountNo int64, amount float64) (*TransferResult, error) {
	var result *TransferResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		probe, err := s.userRepo.FindByID(ctx, senderID)
		if err != nil {
			return err
		}
		if probe == nil {
			return ErrSenderNotFound
		}

		// Lock the two rows in ascending account-number order. Opposing
		// A->B and B->A transfers then queue on the first lock instead of
		// deadlocking on each other's second one.
		var sender, receiver *domain.User
		lockSender := func() error {
			sender, err = s.userRepo.FindByIDForUpdate(ctx, senderID)
			if err != nil {
				return err
			}
			if sender == nil {
				return ErrSenderNotFound
			}
			return nil
		}
		lockReceiver := func() error {
			receiver, err = s.userRepo.FindByAccountNoForUpdate(ctx, receiverAccountNo)
			if err != nil {
				return err
			}
			if receiver == nil {
				return ErrReceiverNotFound
			}
			return nil
		}
		locks := []func() error{lockSender, lockReceiver}
		if probe.AccountNo > receiverAccountNo {
			locks[0], locks[1] = locks[1], locks[0]
		}
		for _, lock := range locks {
			if err := lock(); err != nil {
				return err
			}
		}

		now := s.clock.Now()
		s.refreshDailyWindow(sender, now)

		if err := validateTransfer(sender, receiver, amount, true); err != nil {
			return err
		}

		sender.Balance -= amount
		sender.DailyRemaining -= amount
		receiver.Balance += amount

		if err := s.userRepo.UpdateBalances(ctx, sender); err != nil {
			return err
		}
		if err := s.userRepo.UpdateBalances(ctx, receiver); err != nil {
			return err
		}

		debit := &domain.Transaction{
			UserID:                sender.ID,
			CounterpartyAccountNo: receiver.AccountNo,
			Amount:                -amount,
			Kind:                  domain.TransactionDebit,
			CreatedAt:             now,
		}
		credit := &domain.Transaction{
			UserID:                receiver.ID,
			CounterpartyAccountNo: sender.AccountNo,
			Amount:                amount,
			Kind:                  domain.TransactionCredit,
			CreatedAt:             now,
		}
		if err := s.transactionRepo.AppendPair(ctx, debit, credit); err != nil {
			return err
		}

		result = &TransferResult{
			SenderUsername:      sender.Username,
			SenderBalance:       sender.Balance,
			DailyLimitRemaining: sender.DailyRemaining,
			ReceiverUsername:    receiver.Username,
			ReceiverBalance:     receiver.Balance,
			Amount:              amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("transfer completed",
		zap.Int("senderID", senderID),
		zap.Int64("receiverAccountNo", receiverAccountNo),
		zap.Float64("amount", amount),
	)
	return result, nil
}

// ValidateForSchedule runs the accept-time checks for a scheduled transfer:
// amount, distinct accounts, existence and current funds. The daily limit
// and the balance are checked again when the task actually executes, since
// both may change before the due date.
func (s *Service) ValidateForSchedule(ctx context.Context, senderID int, receiverAccountNo int64, amount float64) (*domain.User, *domain.User, error) {
	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return nil, nil, err
	}
	if sender == nil {
		return nil, nil, ErrSenderNotFound
	}

	receiver, err := s.userRepo.FindByAccountNo(ctx, receiverAccountNo)
	if err != nil {
		return nil, nil, err
	}
	if receiver == nil {
		return nil, nil, ErrReceiverNotFound
	}

	if err := validateTransfer(sender, receiver, amount, false); err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

// refreshDailyWindow resets the sender's allowance on the first touch of a
// new calendar day. Idempotent within the same day.
func (s *Service) refreshDailyWindow(user *domain.User, now time.Time) {
	if dateOf(now).After(dateOf(user.LimitResetAt)) {
		user.DailyRemaining = s.dailyLimit
		user.LimitResetAt = now
	}
}

// validateTransfer applies the business checks in order; the first failure
// wins. It has no side effects, so it is safe to call speculatively.
func validateTransfer(sender, receiver *domain.User, amount float64, checkLimit bool) error {
	switch {
	case amount <= 0:
		return ErrInvalidAmount
	case sender.AccountNo == receiver.AccountNo:
		return ErrSameAccount
	case sender.Balance < amount:
		return ErrInsufficientFunds
	case checkLimit && sender.DailyRemaining < amount:
		return ErrDailyLimitExceeded
	}
	return nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
