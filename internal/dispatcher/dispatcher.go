package dispatcher

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/moneyflow/internal/config"
	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/service/taskservice"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
	"github.com/GlebRadaev/moneyflow/pkg/clock"
)

//go:generate mockgen -source=dispatcher.go -destination=dispatcher_mock.go -package=dispatcher

var processingTasks sync.Map

// Executor is the single code path that applies the business rules; the
// dispatcher never moves money itself.
type Executor interface {
	Transfer(ctx context.Context, senderID int, receiverAccountNo int64, amount float64) (*transferservice.TransferResult, error)
}

// Service executes scheduled transfers when they come due. Tasks live in
// the database, so a process restart loses nothing; the poller claims due
// tasks (pending to processing) and hands them to the worker pool.
type Service struct {
	taskRepo     taskservice.TaskRepo
	executor     Executor
	clock        clock.Clock
	limit        uint32
	workerPool   WorkerPoolI
	pollInterval time.Duration
}

func New(cfg *config.Config, taskRepo taskservice.TaskRepo, executor Executor, clk clock.Clock) *Service {
	return &Service{
		taskRepo:     taskRepo,
		executor:     executor,
		clock:        clk,
		limit:        1000,
		workerPool:   NewWorkerPool(cfg.DispatchWorkers),
		pollInterval: cfg.DispatchInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Dispatcher service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dispatcher")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.processDueTasks(ctx)
		}
	}
}

func (s *Service) processDueTasks(ctx context.Context) {
	tasks, err := s.taskRepo.ClaimDue(ctx, s.clock.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to claim due tasks", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, task := range tasks {
		task := task

		if _, loaded := processingTasks.LoadOrStore(task.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingTasks.Delete(task.ID)
				return s.handleTask(ctx, task)
			})
			if err != nil {
				processingTasks.Delete(task.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing due tasks", zap.Error(err))
	}
}

// handleTask runs the due transfer and records a terminal outcome. A
// rejection or fault marks the task failed with the reason verbatim; it is
// never retried, since re-running a money-moving operation risks double
// execution.
func (s *Service) handleTask(ctx context.Context, task domain.ScheduledTask) error {
	result, err := s.executor.Transfer(ctx, task.SenderID, task.ReceiverAccountNo, task.Amount)
	if err != nil {
		zap.L().Info("Scheduled transfer failed",
			zap.String("taskID", task.ID),
			zap.String("reason", err.Error()),
		)
		return s.taskRepo.MarkFailed(ctx, task.ID, err.Error())
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return s.taskRepo.MarkFailed(ctx, task.ID, err.Error())
	}

	zap.L().Info("Scheduled transfer completed", zap.String("taskID", task.ID))
	return s.taskRepo.MarkSuccess(ctx, task.ID, payload)
}
