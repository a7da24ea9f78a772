package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/moneyflow/docs"
	taskhandlers "github.com/GlebRadaev/moneyflow/internal/handlers/tasks"
	transferhandlers "github.com/GlebRadaev/moneyflow/internal/handlers/transfers"
	userhandlers "github.com/GlebRadaev/moneyflow/internal/handlers/users"
	"github.com/GlebRadaev/moneyflow/internal/service"
	"github.com/GlebRadaev/moneyflow/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type TransferHandler interface {
	TransferImmediate(w http.ResponseWriter, r *http.Request)
	TransferScheduled(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	SeedUsers(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TransferHandler TransferHandler
	TaskHandler     TaskHandler
	UserHandler     UserHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		TransferHandler: transferhandlers.New(s.TransferService, s.ScheduleService),
		TaskHandler:     taskhandlers.New(s.TaskService),
		UserHandler:     userhandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Server is running successfully"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/immediate", h.TransferHandler.TransferImmediate)
			r.Post("/scheduled", h.TransferHandler.TransferScheduled)
		})
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/status/{taskID}", h.TaskHandler.GetStatus)
		})
		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.UserHandler.GetUsers)
			r.Post("/seed", h.UserHandler.SeedUsers)
			r.Get("/{userID}/transactions", h.UserHandler.GetTransactions)
		})
	})

	return r
}
