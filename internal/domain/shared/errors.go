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

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized      = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden         = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrNoSession         = NewDomainError("NO_SESSION", "No authenticated vendor session")
)

// IsValidationError reports whether the error is a local validation failure,
// as opposed to a gateway (persistence/network) failure. Validation failures
// never reach the gateway.
func IsValidationError(err error) bool {
	de, ok := err.(*DomainError)
	if !ok {
		return false
	}
	switch de.Code {
	case "INVALID_INPUT", "INVALID_STATE", "INVALID_NAME", "INVALID_PRICE",
		"INVALID_QUANTITY", "INVALID_STATUS", "INVALID_EMAIL", "INVALID_PHONE",
		"INVALID_DURATION", "INVALID_ADDRESS", "INVALID_CATEGORY",
		"INSUFFICIENT_STOCK":
		return true
	}
	return false
}
