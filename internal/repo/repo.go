package repo

import (
	"github.com/GlebRadaev/moneyflow/internal/pg"
	taskrepo "github.com/GlebRadaev/moneyflow/internal/repo/task-repo"
	transactionrepo "github.com/GlebRadaev/moneyflow/internal/repo/transaction-repo"
	userrepo "github.com/GlebRadaev/moneyflow/internal/repo/user-repo"
	"github.com/GlebRadaev/moneyflow/internal/service/taskservice"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
)

type Repositories struct {
	UserRepo        transferservice.UserRepo
	TransactionRepo transferservice.TransactionRepo
	TaskRepo        taskservice.TaskRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn, txManager)
	transactionRepo := transactionrepo.New(conn)
	taskRepo := taskrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		TransactionRepo: transactionRepo,
		TaskRepo:        taskRepo,
	}
}
