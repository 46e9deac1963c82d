package dto

import "github.com/shopadmin/backend/internal/domain/shared"

// Response is the envelope every successful endpoint returns. Pagination
// rides at the top level next to data, not nested inside it.
type Response struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       any              `json:"data,omitempty"`
	Pagination *shared.PageInfo `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope every failing endpoint returns
type ErrorResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Code    string             `json:"code"`
	Details []ValidationDetail `json:"details,omitempty"`
}

// ValidationDetail names one failing field in a validation error
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewPagedResponse creates a success envelope carrying page metadata
func NewPagedResponse(message string, data any, page shared.PageInfo) Response {
	return Response{Success: true, Message: message, Data: data, Pagination: &page}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Code: code}
}

// NewValidationErrorResponse creates an error envelope enumerating every
// failing field
func NewValidationErrorResponse(details []ValidationDetail) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: "Request validation failed",
		Code:    ErrCodeValidation,
		Details: details,
	}
}

// IDRequest binds the :id path parameter, validated as a UUID before the
// value ever reaches a service
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
