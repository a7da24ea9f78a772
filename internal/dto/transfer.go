package dto

type TransferRequestDTO struct {
	SenderID        int     `json:"sender_id" example:"1"`
	ReceiverAccount int64   `json:"receiver_account" example:"1000000002"`
	Amount          float64 `json:"amount" example:"500"`
}

type ScheduledTransferRequestDTO struct {
	SenderID        int     `json:"sender_id" example:"1"`
	ReceiverAccount int64   `json:"receiver_account" example:"1000000002"`
	Amount          float64 `json:"amount" example:"500"`
	ScheduledDate   string  `json:"scheduled_date" example:"2025-10-27"`
}

type TransferSenderDTO struct {
	Username            string  `json:"username" example:"user1"`
	Balance             float64 `json:"balance" example:"4500"`
	DailyLimitRemaining float64 `json:"daily_limit_remaining" example:"1500"`
}

type TransferReceiverDTO struct {
	Username string  `json:"username" example:"user2"`
	Balance  float64 `json:"balance" example:"5500"`
}

type TransferResponseDTO struct {
	Message  string              `json:"message" example:"Transfer successful"`
	Sender   TransferSenderDTO   `json:"sender"`
	Receiver TransferReceiverDTO `json:"receiver"`
}

type ScheduledTransferResponseDTO struct {
	Message          string  `json:"message" example:"Transfer scheduled successfully"`
	TaskID           string  `json:"task_id" example:"5b2cfa53-0c07-4de7-a0a1-4f1c0ccf4c2f"`
	ScheduledDate    string  `json:"scheduled_date" example:"2025-10-27"`
	SenderUsername   string  `json:"sender_username" example:"user1"`
	ReceiverUsername string  `json:"receiver_username" example:"user2"`
	Amount           float64 `json:"amount" example:"500"`
}
