package transfers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/moneyflow/internal/dto"
	"github.com/GlebRadaev/moneyflow/internal/service/taskservice"
	"github.com/GlebRadaev/moneyflow/internal/service/transferservice"
	"github.com/GlebRadaev/moneyflow/pkg/utils"
)

//go:generate mockgen -source=transfers.go -destination=transfers_mock.go -package=transfers

type TransferService interface {
	Transfer(ctx context.Context, senderID int, receiverAccountNo int64, amount float64) (*transferservice.TransferResult, error)
}

type ScheduleService interface {
	Schedule(ctx context.Context, senderID int, receiverAccountNo int64, amount float64, scheduledDate string) (*taskservice.ScheduleResult, error)
}

type TransferHandler struct {
	transferService TransferService
	scheduleService ScheduleService
}

func New(transferService TransferService, scheduleService ScheduleService) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		scheduleService: scheduleService,
	}
}

// TransferImmediate godoc
//
//	@Summary		Immediate money transfer
//	@Description	Transfer money between two accounts right away, enforcing balance and daily limit.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer request payload"
//	@Success		200		{object}	dto.TransferResponseDTO	"Transfer successful"
//	@Failure		400		{object}	utils.Response			"Transfer rejected by business rules"
//	@Failure		404		{object}	utils.Response			"Sender or receiver not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/transfers/immediate [post]
func (h *TransferHandler) TransferImmediate(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.transferService.Transfer(r.Context(), req.SenderID, req.ReceiverAccount, req.Amount)
	if err != nil {
		respondTransferError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransferResponseDTO{
		Message: "Transfer successful",
		Sender: dto.TransferSenderDTO{
			Username:            result.SenderUsername,
			Balance:             result.SenderBalance,
			DailyLimitRemaining: result.DailyLimitRemaining,
		},
		Receiver: dto.TransferReceiverDTO{
			Username: result.ReceiverUsername,
			Balance:  result.ReceiverBalance,
		},
	})
}

// TransferScheduled godoc
//
//	@Summary		Schedule a money transfer
//	@Description	Schedule a transfer for a strictly future date; it is executed by the background dispatcher.
//	@Tags			Transfers
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ScheduledTransferRequestDTO		true	"Scheduled transfer request payload"
//	@Success		202		{object}	dto.ScheduledTransferResponseDTO	"Transfer scheduled"
//	@Failure		400		{object}	utils.Response						"Request rejected by business rules"
//	@Failure		404		{object}	utils.Response						"Sender or receiver not found"
//	@Failure		500		{object}	utils.Response						"Internal server error"
//	@Router			/api/transfers/scheduled [post]
func (h *TransferHandler) TransferScheduled(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduledTransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.scheduleService.Schedule(r.Context(), req.SenderID, req.ReceiverAccount, req.Amount, req.ScheduledDate)
	if err != nil {
		respondTransferError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusAccepted, dto.ScheduledTransferResponseDTO{
		Message:          "Transfer scheduled successfully",
		TaskID:           result.TaskID,
		ScheduledDate:    result.ScheduledDate,
		SenderUsername:   result.SenderUsername,
		ReceiverUsername: result.ReceiverUsername,
		Amount:           result.Amount,
	})
}

func respondTransferError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, transferservice.ErrSenderNotFound),
		errors.Is(err, transferservice.ErrReceiverNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, transferservice.ErrInvalidAmount),
		errors.Is(err, transferservice.ErrSameAccount),
		errors.Is(err, transferservice.ErrInsufficientFunds),
		errors.Is(err, transferservice.ErrDailyLimitExceeded),
		errors.Is(err, transferservice.ErrInvalidScheduledDate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
