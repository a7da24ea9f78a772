package domain

import (
	"encoding/json"
	"time"
)

type User struct {
	ID             int       `db:"id"`
	Username       string    `db:"username"`
	AccountNo      int64     `db:"account_no"`
	Balance        float64   `db:"balance"`
	DailyRemaining float64   `db:"daily_remaining"`
	LimitResetAt   time.Time `db:"limit_reset_at"`
	CreatedAt      time.Time `db:"created_at"`
}

const (
	TransactionDebit  = "debit"
	TransactionCredit = "credit"
)

// Transaction is an append-only ledger row. A completed transfer always
// produces two of them: a negative debit for the sender and a positive
// credit for the receiver, written together with one timestamp.
type Transaction struct {
	ID                    int       `db:"id"`
	UserID                int       `db:"user_id"`
	CounterpartyAccountNo int64     `db:"counterparty_account_no"`
	Amount                float64   `db:"amount"`
	Kind                  string    `db:"kind"`
	CreatedAt             time.Time `db:"created_at"`
}

const (
	TaskStatusPending    = "pending"
	TaskStatusProcessing = "processing"
	TaskStatusSuccess    = "success"
	TaskStatusFailed     = "failed"
)

type ScheduledTask struct {
	ID                string          `db:"id"`
	SenderID          int             `db:"sender_id"`
	ReceiverAccountNo int64           `db:"receiver_account_no"`
	Amount            float64         `db:"amount"`
	ScheduledDate     time.Time       `db:"scheduled_date"`
	DueAt             time.Time       `db:"due_at"`
	Status            string          `db:"status"`
	Result            json.RawMessage `db:"result"`
	Reason            string          `db:"reason"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}
