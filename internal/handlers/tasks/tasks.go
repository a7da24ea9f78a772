package tasks

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/dto"
	"github.com/GlebRadaev/moneyflow/internal/service/taskservice"
	"github.com/GlebRadaev/moneyflow/pkg/utils"
)

//go:generate mockgen -source=tasks.go -destination=tasks_mock.go -package=tasks

type Service interface {
	Status(ctx context.Context, taskID string) (*domain.ScheduledTask, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// GetStatus godoc
//
//	@Summary		Get scheduled transfer status
//	@Description	Check the lifecycle state of a scheduled transfer task and, when finished, its result or failure reason.
//	@Tags			Tasks
//	@Produce		json
//	@Param			taskID	path		string					true	"Task id"
//	@Success		200		{object}	dto.TaskStatusResponseDTO	"Task status"
//	@Failure		404		{object}	utils.Response				"Task not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/tasks/status/{taskID} [get]
func (h *TaskHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "taskID")

	task, err := h.taskService.Status(r.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	resp := dto.TaskStatusResponseDTO{
		TaskID: task.ID,
		Status: task.Status,
	}
	switch task.Status {
	case domain.TaskStatusPending:
		resp.Message = "Transfer is scheduled and waiting to be executed"
	case domain.TaskStatusProcessing:
		resp.Message = "Transfer is being executed"
	case domain.TaskStatusSuccess:
		resp.Result = task.Result
	case domain.TaskStatusFailed:
		resp.Error = task.Reason
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
