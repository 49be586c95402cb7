package dto

import "net/http"

// Error codes surfaced by the storefront API. Codes match the ones the
// domain layer attaches to its errors so handlers can map them without
// translation.
const (
	// ErrCodeEmptyCart is returned when checkout is attempted with no items
	ErrCodeEmptyCart = "EMPTY_CART"
	// ErrCodeIncompleteBilling is returned when billing fields fail validation
	ErrCodeIncompleteBilling = "INCOMPLETE_BILLING"
	// ErrCodeSubmissionFailed is returned when the shop API rejects an order
	ErrCodeSubmissionFailed = "ORDER_SUBMISSION_FAILED"
	// ErrCodeSubmissionInFlight is returned when a checkout is already running
	ErrCodeSubmissionInFlight = "SUBMISSION_IN_FLIGHT"
	// ErrCodeNotSignedIn is returned when checkout requires an account
	ErrCodeNotSignedIn = "NOT_SIGNED_IN"
	// ErrCodeNoCompletedOrder is returned when no confirmation is available
	ErrCodeNoCompletedOrder = "NO_COMPLETED_ORDER"
	// ErrCodeNotFound is returned when a resource does not exist
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInvalidInput is returned for input that fails domain validation
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeInvalidItem is returned for an item that cannot enter the cart
	ErrCodeInvalidItem = "INVALID_ITEM"
	// ErrCodeInvalidPrice is returned for a price that does not parse
	ErrCodeInvalidPrice = "INVALID_PRICE"
	// ErrCodeBadRequest is returned for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is returned for unexpected failures
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeEmptyCart:          http.StatusConflict,
	ErrCodeIncompleteBilling:  http.StatusUnprocessableEntity,
	ErrCodeSubmissionFailed:   http.StatusBadGateway,
	ErrCodeSubmissionInFlight: http.StatusTooManyRequests,
	ErrCodeNotSignedIn:        http.StatusUnauthorized,
	ErrCodeNoCompletedOrder:   http.StatusNotFound,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeInvalidInput:       http.StatusBadRequest,
	ErrCodeInvalidItem:        http.StatusBadRequest,
	ErrCodeInvalidPrice:       http.StatusBadRequest,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
