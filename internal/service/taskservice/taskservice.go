package taskservice

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
	"github.com/GlebRadaev/moneyflow/pkg/clock"
)

//go:generate mockgen -source=taskservice.go -destination=taskservice_mock.go -package=taskservice

const dateLayout = "2006-01-02"

var ErrTaskNotFound = errors.New("task not found")

type TaskRepo interface {
	Create(ctx context.Context, task *domain.ScheduledTask) (*domain.ScheduledTask, error)
	FindByID(ctx context.Context, id string) (*domain.ScheduledTask, error)
	ClaimDue(ctx context.Context, now time.Time, limit uint32) ([]domain.ScheduledTask, error)
	MarkSuccess(ctx context.Context, id string, result json.RawMessage) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type Validator interface {
	ValidateForSchedule(ctx context.Context, senderID int, receiverAccountNo int64, amount float64) (*domain.User, *domain.User, error)
}

type ScheduleResult struct {
	TaskID           string
	ScheduledDate    string
	SenderUsername   string
	ReceiverUsername string
	Amount           float64
}

type Service struct {
	taskRepo  TaskRepo
	validator Validator
	clock     clock.Clock
}

func New(taskRepo TaskRepo, validator Validator, clk clock.Clock) *Service {
	return &Service{
		taskRepo:  taskRepo,
		validator: validator,
		clock:     clk,
	}
}

// Schedule accepts a transfer for a strictly future date. The request is
// validated once now (amount, accounts, current funds); the limit and the
// date-dependent state are re-validated by the executor at due time, since
// balances may change before then. The task fires at 00:00 UTC of the
// scheduled date. Same-day dates are rejected: an immediate transfer
// already covers that case.
func (s *Service) Schedule(ctx context.Context, senderID int, receiverAccountNo int64, amount float64, scheduledDate string) (*ScheduleResult, error) {
	date, err := time.ParseInLocation(dateLayout, scheduledDate, time.UTC)
	if err != nil {
		return nil, transferservice.ErrInvalidScheduledDate
	}

	now := s.clock.Now()
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if !date.After(today) {
		return nil, transferservice.ErrInvalidScheduledDate
	}

	sender, receiver, err := s.validator.ValidateForSchedule(ctx, senderID, receiverAccountNo, amount)
	if err != nil {
		return nil, err
	}

	task := &domain.ScheduledTask{
		ID:                uuid.NewString(),
		SenderID:          senderID,
		ReceiverAccountNo: receiverAccountNo,
		Amount:            amount,
		ScheduledDate:     date,
		DueAt:             date,
		Status:            domain.TaskStatusPending,
	}
	created, err := s.taskRepo.Create(ctx, task)
	if err != nil {
		zap.L().Error("failed to create scheduled task", zap.Error(err))
		return nil, err
	}

	zap.L().Info("transfer scheduled",
		zap.String("taskID", created.ID),
		zap.String("scheduledDate", scheduledDate),
		zap.Float64("amount", amount),
	)
	return &ScheduleResult{
		TaskID:           created.ID,
		ScheduledDate:    scheduledDate,
		SenderUsername:   sender.Username,
		ReceiverUsername: receiver.Username,
		Amount:           amount,
	}, nil
}

func (s *Service) Status(ctx context.Context, taskID string) (*domain.ScheduledTask, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		zap.L().Error("failed to get task status", zap.Error(err))
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}
