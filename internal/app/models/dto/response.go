package dto

import (
	"time"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// APIResponse is the envelope of every API response
type APIResponse struct {
	Success   bool            `json:"success" example:"true"`
	Message   string          `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}     `json:"data,omitempty"`
	Outcome   *models.Outcome `json:"outcome,omitempty"`
	Error     *ErrorDetail    `json:"error,omitempty"`
	Timestamp time.Time       `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewSuccessResponse wraps data in a successful envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewOutcomeResponse wraps the outcome of a campus operation. Success
// mirrors Outcome.OK.
func NewOutcomeResponse(outcome models.Outcome, data interface{}) APIResponse {
	return APIResponse{
		Success:   outcome.OK(),
		Message:   outcome.Message,
		Data:      data,
		Outcome:   &outcome,
		Timestamp: time.Now(),
	}
}

// PaginationInfo describes one page of a list
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"3"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"25"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}
