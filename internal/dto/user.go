package dto

import "time"

type UserResponseDTO struct {
	ID             int     `json:"id" example:"1"`
	Username       string  `json:"username" example:"user1"`
	AccountNo      int64   `json:"account_no" example:"1000000001"`
	Balance        float64 `json:"balance" example:"5000"`
	DailyRemaining float64 `json:"daily_remaining" example:"2000"`
	LimitResetAt   string  `json:"limit_reset_at" example:"2025-10-20"`
}

type TransactionResponseDTO struct {
	ID                    int       `json:"id" example:"1"`
	CounterpartyAccountNo int64     `json:"counterparty_account_no" example:"1000000002"`
	Amount                float64   `json:"amount" example:"-500"`
	Kind                  string    `json:"kind" example:"debit"`
	CreatedAt             time.Time `json:"created_at" example:"2025-10-20T16:09:57+03:00"`
}
