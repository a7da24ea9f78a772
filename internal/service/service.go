package service

import (
	"github.com/GlebRadaev/moneyflow/internal/config"
	"github.com/GlebRadaev/moneyflow/internal/handlers/tasks"
	"github.com/GlebRadaev/moneyflow/internal/handlers/transfers"
	"github.com/GlebRadaev/moneyflow/internal/handlers/users"
	"github.com/GlebRadaev/moneyflow/internal/pg"
	"github.com/GlebRadaev/moneyflow/internal/repo"
	"github.com/GlebRadaev/moneyflow/internal/service/taskservice"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
	"github.com/GlebRadaev/moneyflow/internal/service/userservice"
	"github.com/GlebRadaev/moneyflow/pkg/clock"
)

type Services struct {
	TransferService transfers.TransferService
	ScheduleService transfers.ScheduleService
	TaskService     tasks.Service
	UserService     users.Service
}

func New(repo *repo.Repositories, cfg *config.Config, txManager pg.TXManager, clk clock.Clock) *Services {
	transferService := transferservice.New(repo.UserRepo, repo.TransactionRepo, txManager, clk, cfg.DailyLimit)
	taskService := taskservice.New(repo.TaskRepo, transferService, clk)
	userService := userservice.New(repo.UserRepo, repo.TransactionRepo, cfg.DailyLimit)

	return &Services{
		TransferService: transferService,
		ScheduleService: taskService,
		TaskService:     taskService,
		UserService:     userService,
	}
}
