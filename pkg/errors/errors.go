package errors

import (
	"fmt"
	"net/http"
)

// StandardError represents a standardized error response
type StandardError struct {
	Code    string `json:"error"`   // Error code/type (e.g., "ValidationError", "ProductNotFound")
	Message string `json:"message"` // Human-readable error message
	Details string `json:"details"` // Additional details (product id, stock levels, etc.)
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for the error
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case "ValidationError", "InvalidRequest":
		return http.StatusBadRequest
	case "ProductNotFound", "InvoiceNotFound":
		return http.StatusNotFound
	case "InsufficientStock":
		return http.StatusConflict
	case "InternalError":
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewStandardError creates a new StandardError
func NewStandardError(errorCode, message, details string) *StandardError {
	return &StandardError{
		Code:    errorCode,
		Message: message,
		Details: details,
	}
}

// Common error constructors
func NewValidationError(message string) *StandardError {
	return NewStandardError("ValidationError", message, "")
}

func NewInvalidRequest(message, details string) *StandardError {
	return NewStandardError("InvalidRequest", message, details)
}

func NewProductNotFound(productID int) *StandardError {
	return NewStandardError("ProductNotFound",
		fmt.Sprintf("product %d not found", productID),
		fmt.Sprintf("Product ID: %d", productID))
}

func NewInvoiceNotFound(invoiceID int) *StandardError {
	return NewStandardError("InvoiceNotFound",
		fmt.Sprintf("invoice %d not found", invoiceID),
		fmt.Sprintf("Invoice ID: %d", invoiceID))
}

func NewInsufficientStock(productID, available, requested int) *StandardError {
	return NewStandardError("InsufficientStock",
		fmt.Sprintf("insufficient stock for product %d", productID),
		fmt.Sprintf("Available: %d, Requested: %d", available, requested))
}

func NewInternalError(message string, err error) *StandardError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return NewStandardError("InternalError", message, details)
}
