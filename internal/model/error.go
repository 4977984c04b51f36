package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeOrderEmpty          = "ORDER_EMPTY"
	ErrCodeInvalidOrderDate    = "INVALID_ORDER_DATE"
	ErrCodeInvalidCategoryPair = "INVALID_CATEGORY_PAIR"
	ErrCodeNoSelection         = "NO_SELECTION"
	ErrCodeNoTags              = "NO_TAGS"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// DomainError is a business-rule violation with a machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

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
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrOrderEmpty          = NewDomainError(ErrCodeOrderEmpty, "Order must contain at least one item with quantity above zero")
	ErrInvalidOrderDate    = NewDomainError(ErrCodeInvalidOrderDate, "Order date must be a valid calendar date (YYYY-MM-DD)")
	ErrInvalidCategoryPair = NewDomainError(ErrCodeInvalidCategoryPair, "Category assignment requires a valid L1/L2 pair from the category tree")
	ErrNoSelection         = NewDomainError(ErrCodeNoSelection, "No products selected")
	ErrNoTags              = NewDomainError(ErrCodeNoTags, "No tag tokens provided")
)
