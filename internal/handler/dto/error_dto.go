package dto

import (
	apperrors "github.com/yourusername/trivia-backend/internal/pkg/errors"
)

// ErrorResponse: единый конверт ошибки
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse создает конверт ошибки для HTTP-статуса
func NewErrorResponse(status int) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: apperrors.Message(status),
	}
}
