package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one line of an invoice. UnitPrice is a snapshot of the
// product price at the moment of sale, not a live reference.
type InvoiceItem struct {
	ProductID int
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal returns unit price × quantity for this line
func (i InvoiceItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Invoice is the aggregate for a completed sale. The ID is assigned by the
// invoice repository on insert; the record is immutable afterwards.
type Invoice struct {
	ID         int
	CustomerID int
	Items      []InvoiceItem
	CreatedAt  time.Time
}

// NewInvoice creates an in-progress invoice for a customer with no items yet
func NewInvoice(customerID int) *Invoice {
	return &Invoice{
		CustomerID: customerID,
		Items:      make([]InvoiceItem, 0),
		CreatedAt:  time.Now(),
	}
}

// AddItem appends a line item to the invoice
func (inv *Invoice) AddItem(item InvoiceItem) {
	inv.Items = append(inv.Items, item)
}

// Total returns the grand total, the sum of all line totals
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}
