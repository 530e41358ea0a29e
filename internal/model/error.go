package model

// ErrCodeEmptyCart is the code for checking out an empty cart, one of the
// few failures surfaced to callers. Store mutations themselves are total:
// missing ids and out-of-range quantities degrade to silent no-ops rather
// than errors.
const ErrCodeEmptyCart = "EMPTY_CART"

// DomainError represents a business-logic failure.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrEmptyCart = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one line to check out")
)
