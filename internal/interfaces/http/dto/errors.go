package dto

import "net/http"

// Error codes shared by the three services
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnavailable  = "UPSTREAM_UNAVAILABLE"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Conflicts
// (duplicate username, duplicate review, duplicate category) answer 400,
// not 409, matching the public API contract.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeUnavailable:  http.StatusServiceUnavailable,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,

	"INVALID_INPUT":         http.StatusBadRequest,
	"INVALID_STATE":         http.StatusBadRequest,
	"ALREADY_EXISTS":        http.StatusBadRequest,
	"USERNAME_TAKEN":        http.StatusBadRequest,
	"INVALID_ROLE":          http.StatusBadRequest,
	"CATEGORY_EXISTS":       http.StatusBadRequest,
	"EMPTY_CART":            http.StatusBadRequest,
	"INVALID_DELIVERY_TIME": http.StatusBadRequest,
	"INVALID_STATUS":        http.StatusBadRequest,
	"ORDER_NOT_CANCELLABLE": http.StatusBadRequest,
	"ORDER_NOT_DELIVERED":   http.StatusBadRequest,
	"REVIEW_EXISTS":         http.StatusBadRequest,
	"PAYMENT_EXISTS":        http.StatusBadRequest,
	"INVALID_PAYMENT_STATE": http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to 500
// for codes no table entry claims
func HTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
