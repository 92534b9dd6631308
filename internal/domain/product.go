package domain

import (
	"github.com/shopspring/decimal"
)

// Product represents a sellable product with its current stock level
type Product struct {
	ID                int
	Name              string
	UnitPrice         decimal.Decimal
	QuantityAvailable int
}

// NewProduct creates a new product with an initial stock level
func NewProduct(id int, name string, unitPrice decimal.Decimal, quantity int) *Product {
	return &Product{
		ID:                id,
		Name:              name,
		UnitPrice:         unitPrice,
		QuantityAvailable: quantity,
	}
}

// ReduceStock decrements the available quantity by amount.
// The available quantity never goes below zero.
func (p *Product) ReduceStock(amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	if amount > p.QuantityAvailable {
		return ErrInsufficientStock
	}
	p.QuantityAvailable -= amount
	return nil
}

// Domain errors
var (
	ErrEmptyInvoice      = &DomainError{Message: "invoice must have at least one item"}
	ErrInvalidQuantity   = &DomainError{Message: "quantity must be greater than zero"}
	ErrProductNotFound   = &DomainError{Message: "product not found"}
	ErrInsufficientStock = &DomainError{Message: "insufficient stock available"}
	ErrInvoiceNotFound   = &DomainError{Message: "invoice not found"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
