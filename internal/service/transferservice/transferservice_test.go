package transferservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/pg"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockTransactionRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	transactionRepo := NewMockTransactionRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(userRepo, transactionRepo, txManager, fixedClock{now: testNow}, 2000)
	defer ctrl.Finish()
	return service, userRepo, transactionRepo, txManager
}

func passThroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func testSender() *domain.User {
	return &domain.User{
		ID:             1,
		Username:       "user1",
		AccountNo:      1000000001,
		Balance:        5000,
		DailyRemaining: 2000,
		LimitResetAt:   testNow,
	}
}

func testReceiver() *domain.User {
	return &domain.User{
		ID:             2,
		Username:       "user2",
		AccountNo:      1000000002,
		Balance:        5000,
		DailyRemaining: 2000,
		LimitResetAt:   testNow,
	}
}

func TestTransfer(t *testing.T) {
	service, userRepo, transactionRepo, txManager := NewMock(t)

	var debit, credit *domain.Transaction

	passThroughTx(txManager)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
	userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
	userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
	userRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	transactionRepo.EXPECT().AppendPair(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, d, c *domain.Transaction) error {
			debit, credit = d, c
			return nil
		},
	)

	result, err := service.Transfer(context.Background(), 1, 1000000002, 500)

	assert.NoError(t, err)
	assert.Equal(t, "user1", result.SenderUsername)
	assert.Equal(t, 4500.0, result.SenderBalance)
	assert.Equal(t, 1500.0, result.DailyLimitRemaining)
	assert.Equal(t, "user2", result.ReceiverUsername)
	assert.Equal(t, 5500.0, result.ReceiverBalance)

	assert.Equal(t, -500.0, debit.Amount)
	assert.Equal(t, domain.TransactionDebit, debit.Kind)
	assert.Equal(t, int64(1000000002), debit.CounterpartyAccountNo)
	assert.Equal(t, 500.0, credit.Amount)
	assert.Equal(t, domain.TransactionCredit, credit.Kind)
	assert.Equal(t, int64(1000000001), credit.CounterpartyAccountNo)
	assert.Equal(t, debit.CreatedAt, credit.CreatedAt)
	assert.Equal(t, 0.0, debit.Amount+credit.Amount)
}

func TestTransferRejections(t *testing.T) {
	tests := []struct {
		name              string
		receiverAccountNo int64
		amount            float64
		prepareMock       func(userRepo *MockUserRepo)
		expectedError     error
	}{
		{
			name:   "Zero amount is rejected",
			amount: 0,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Negative amount is rejected",
			amount: -100,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: ErrInvalidAmount,
		},
		{
			name:              "Transfer to own account is rejected",
			receiverAccountNo: 1000000001,
			amount:            500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000001)).Return(testSender(), nil)
			},
			expectedError: ErrSameAccount,
		},
		{
			name:   "Sender not found",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSenderNotFound,
		},
		{
			name:   "Receiver not found",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(nil, nil)
			},
			expectedError: ErrReceiverNotFound,
		},
		{
			name:   "Insufficient funds",
			amount: 6000,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Daily limit exceeded",
			amount: 1500,
			prepareMock: func(userRepo *MockUserRepo) {
				sender := testSender()
				sender.DailyRemaining = 1000
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(sender, nil)
				userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: ErrDailyLimitExceeded,
		},
		{
			name:   "Storage error is propagated",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, txManager := NewMock(t)
			passThroughTx(txManager)
			tt.prepareMock(userRepo)

			receiverAccountNo := tt.receiverAccountNo
			if receiverAccountNo == 0 {
				receiverAccountNo = 1000000002
			}
			result, err := service.Transfer(context.Background(), 1, receiverAccountNo, tt.amount)

			assert.Nil(t, result)
			assert.Error(t, err)
			assert.Equal(t, tt.expectedError.Error(), err.Error())
		})
	}
}

func TestTransferDailyWindowReset(t *testing.T) {
	service, userRepo, transactionRepo, txManager := NewMock(t)

	// Allowance was exhausted yesterday; crossing the day boundary refreshes
	// it before the limit check.
	sender := testSender()
	sender.DailyRemaining = 0
	sender.LimitResetAt = testNow.AddDate(0, 0, -1)

	var updatedSender *domain.User

	passThroughTx(txManager)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
	userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(sender, nil)
	userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
	userRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, user *domain.User) error {
			if user.ID == 1 && updatedSender == nil {
				updatedSender = user
			}
			return nil
		},
	).Times(2)
	transactionRepo.EXPECT().AppendPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Transfer(context.Background(), 1, 1000000002, 500)

	assert.NoError(t, err)
	assert.Equal(t, 1500.0, result.DailyLimitRemaining)
	assert.Equal(t, testNow, updatedSender.LimitResetAt)
}

func TestTransferDailyWindowSameDayNoReset(t *testing.T) {
	service, userRepo, _, txManager := NewMock(t)

	// Same-day allowance is not refreshed, so the limit check still fails.
	sender := testSender()
	sender.DailyRemaining = 300

	passThroughTx(txManager)
	userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
	userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(sender, nil)
	userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)

	result, err := service.Transfer(context.Background(), 1, 1000000002, 400)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
}

func TestTransferLocksLowerAccountFirst(t *testing.T) {
	service, userRepo, transactionRepo, txManager := NewMock(t)

	// Sender holds the higher account number, so the receiver's row must be
	// locked first; with both directions ordered the same way, opposing
	// transfers queue instead of deadlocking.
	sender := testReceiver()
	receiver := testSender()

	passThroughTx(txManager)
	probe := userRepo.EXPECT().FindByID(gomock.Any(), 2).Return(testReceiver(), nil)
	lockReceiver := userRepo.EXPECT().FindByAccountNoForUpdate(gomock.Any(), int64(1000000001)).Return(receiver, nil)
	lockSender := userRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 2).Return(sender, nil)
	gomock.InOrder(probe, lockReceiver, lockSender)

	userRepo.EXPECT().UpdateBalances(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	transactionRepo.EXPECT().AppendPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.Transfer(context.Background(), 2, 1000000001, 500)

	assert.NoError(t, err)
	assert.Equal(t, 4500.0, result.SenderBalance)
	assert.Equal(t, 5500.0, result.ReceiverBalance)
}

func TestValidateForSchedule(t *testing.T) {
	tests := []struct {
		name          string
		amount        float64
		prepareMock   func(userRepo *MockUserRepo)
		expectedError error
	}{
		{
			name:   "Valid request passes",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNo(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: nil,
		},
		{
			name:   "Daily limit is not checked at acceptance time",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				sender := testSender()
				sender.DailyRemaining = 0
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(sender, nil)
				userRepo.EXPECT().FindByAccountNo(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: nil,
		},
		{
			name:   "Insufficient funds",
			amount: 6000,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(testSender(), nil)
				userRepo.EXPECT().FindByAccountNo(gomock.Any(), int64(1000000002)).Return(testReceiver(), nil)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:   "Sender not found",
			amount: 500,
			prepareMock: func(userRepo *MockUserRepo) {
				userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: ErrSenderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, _, _ := NewMock(t)
			tt.prepareMock(userRepo)

			sender, receiver, err := service.ValidateForSchedule(context.Background(), 1, 1000000002, tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, sender)
				assert.Nil(t, receiver)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, sender)
				assert.NotNil(t, receiver)
			}
		})
	}
}

func TestValidateTransferIdempotent(t *testing.T) {
	sender := testSender()
	receiver := testReceiver()

	first := validateTransfer(sender, receiver, 500, true)
	second := validateTransfer(sender, receiver, 500, true)

	assert.NoError(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 5000.0, sender.Balance)
	assert.Equal(t, 2000.0, sender.DailyRemaining)
}
