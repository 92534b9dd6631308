package handlers

import "github.com/shopspring/decimal"

// CreateInvoiceRequest represents the request body for creating an invoice
type CreateInvoiceRequest struct {
	CustomerID int                  `json:"customerId"`
	Items      []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest is one requested line item
type InvoiceItemRequest struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

// CreateInvoiceResponse represents the response after creating an invoice
type CreateInvoiceResponse struct {
	InvoiceID int `json:"invoiceId"`
}

// InvoiceItemResponse is one line of a persisted invoice projection
type InvoiceItemResponse struct {
	ProductID int             `json:"productId"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// InvoiceResponse is the full projection returned by the read endpoint
type InvoiceResponse struct {
	InvoiceID  int                   `json:"invoiceId"`
	CustomerID int                   `json:"customerId"`
	Items      []InvoiceItemResponse `json:"items"`
	Total      decimal.Decimal       `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}
