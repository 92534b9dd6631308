package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      *StandardError
		expected int
	}{
		{"validation error", NewValidationError("invoice must have at least one item"), http.StatusBadRequest},
		{"invalid request", NewInvalidRequest("invalid request body", ""), http.StatusBadRequest},
		{"product not found", NewProductNotFound(42), http.StatusNotFound},
		{"invoice not found", NewInvoiceNotFound(9999), http.StatusNotFound},
		{"insufficient stock", NewInsufficientStock(5, 5, 10), http.StatusConflict},
		{"internal error", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"unknown code", NewStandardError("SomethingElse", "msg", ""), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.HTTPStatus())
		})
	}
}

func TestConstructors_MessagesNameTheSubject(t *testing.T) {
	assert.Equal(t, "product 42 not found", NewProductNotFound(42).Error())
	assert.Equal(t, "invoice 9999 not found", NewInvoiceNotFound(9999).Error())

	stockErr := NewInsufficientStock(5, 5, 10)
	assert.Equal(t, "insufficient stock for product 5", stockErr.Error())
	assert.Equal(t, "Available: 5, Requested: 10", stockErr.Details)
}
