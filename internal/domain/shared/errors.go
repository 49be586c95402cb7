package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewSubmissionError wraps the message reported by the shop API for a
// failed order submission. The cart is left untouched by the caller so
// the user can retry without re-entering data.
func NewSubmissionError(message string) *DomainError {
	if message == "" {
		message = "Order submission failed"
	}
	return NewDomainError("ORDER_SUBMISSION_FAILED", message)
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrEmptyCart          = NewDomainError("EMPTY_CART", "Cannot checkout with an empty cart.")
	ErrIncompleteBilling  = NewDomainError("INCOMPLETE_BILLING", "Please fill out all billing information before confirming the order.")
	ErrSubmissionInFlight = NewDomainError("SUBMISSION_IN_FLIGHT", "A checkout is already in progress for this session.")
	ErrNoCompletedOrder   = NewDomainError("NO_COMPLETED_ORDER", "No completed order for this session")
	ErrNotSignedIn        = NewDomainError("NOT_SIGNED_IN", "Please sign in or create an account to complete your order.")
)
