package dto

import "encoding/json"

type TaskStatusResponseDTO struct {
	TaskID  string          `json:"task_id" example:"5b2cfa53-0c07-4de7-a0a1-4f1c0ccf4c2f"`
	Status  string          `json:"status" example:"pending"`
	Message string          `json:"message,omitempty" example:"Transfer is scheduled and waiting to be executed"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
}
