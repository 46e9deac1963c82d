package dto

import "net/http"

// Error codes exposed on the wire. Domain error codes map onto these
// one-to-one so clients see a closed set.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// domainCodeHTTPStatus maps domain error codes to HTTP status codes.
// Input-shaped failures are 400, state-shaped failures are 422.
var domainCodeHTTPStatus = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"CATEGORY_IN_USE":     http.StatusConflict,
	"DUPLICATE_PRODUCT":   http.StatusBadRequest,
	"INVALID_CATEGORY":    http.StatusBadRequest,
	"INVALID_PRODUCT":     http.StatusBadRequest,
	"INVALID_STATUS":      http.StatusBadRequest,
	"INVALID_ROLE":        http.StatusBadRequest,
	"INVALID_NAME":        http.StatusBadRequest,
	"INVALID_EMAIL":       http.StatusBadRequest,
	"INVALID_PASSWORD":    http.StatusBadRequest,
	"INVALID_PRICE":       http.StatusBadRequest,
	"INVALID_SKU":         http.StatusBadRequest,
	"INVALID_TITLE":       http.StatusBadRequest,
	"INVALID_CODE":        http.StatusBadRequest,
	"INVALID_QUANTITY":    http.StatusBadRequest,
	"INVALID_THRESHOLD":   http.StatusBadRequest,
	"INVALID_PRODUCT_ID":  http.StatusBadRequest,
	"INVALID_FILE_TYPE":   http.StatusBadRequest,
	"VALIDATION_ERROR":    http.StatusBadRequest,
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"FORBIDDEN":           http.StatusForbidden,
	"RATE_LIMITED":        http.StatusTooManyRequests,
	"INTERNAL_ERROR":      http.StatusInternalServerError,
}

// HTTPStatusForDomainCode resolves the HTTP status for a domain error
// code. Unknown codes are treated as internal faults.
func HTTPStatusForDomainCode(code string) int {
	if status, ok := domainCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
