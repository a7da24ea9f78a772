package users

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/moneyflow/internal/domain"
	"github.com/GlebRadaev/moneyflow/internal/dto"
	"github.com/GlebRadaev/moneyflow/internal/service/userservice"
	"github.com/GlebRadaev/moneyflow/pkg/utils"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=users

const dateLayout = "2006-01-02"

type Service interface {
	GetUsers(ctx context.Context) ([]domain.User, error)
	SeedUsers(ctx context.Context) (int, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUsers godoc
//
//	@Summary		List accounts
//	@Description	Fetch all accounts with their balances and remaining daily allowance.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO	"Accounts"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/users [get]
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(users))
	for i, user := range users {
		response[i] = dto.UserResponseDTO{
			ID:             user.ID,
			Username:       user.Username,
			AccountNo:      user.AccountNo,
			Balance:        user.Balance,
			DailyRemaining: user.DailyRemaining,
			LimitResetAt:   user.LimitResetAt.Format(dateLayout),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SeedUsers godoc
//
//	@Summary		Seed fixture accounts
//	@Description	Replace all data with 10 fixture accounts holding an initial balance.
//	@Tags			Users
//	@Produce		json
//	@Success		201	{object}	utils.Response	"Accounts seeded"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/seed [post]
func (h *UserHandler) SeedUsers(w http.ResponseWriter, r *http.Request) {
	count, err := h.userService.SeedUsers(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{
		Message: fmt.Sprintf("%d users seeded successfully", count),
	})
}

// GetTransactions godoc
//
//	@Summary		Account ledger history
//	@Description	Get all ledger entries for an account, newest first.
//	@Tags			Users
//	@Produce		json
//	@Param			userID	path		int						true	"User id"
//	@Success		200		{array}		dto.TransactionResponseDTO	"Ledger entries"
//	@Failure		400		{object}	utils.Response				"Invalid user id"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/users/{userID}/transactions [get]
func (h *UserHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	txns, err := h.userService.GetTransactions(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.TransactionResponseDTO{
			ID:                    txn.ID,
			CounterpartyAccountNo: txn.CounterpartyAccountNo,
			Amount:                txn.Amount,
			Kind:                  txn.Kind,
			CreatedAt:             txn.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
