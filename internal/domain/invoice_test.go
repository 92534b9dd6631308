package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewInvoice(t *testing.T) {
	invoice := NewInvoice(7)

	assert.Equal(t, 0, invoice.ID)
	assert.Equal(t, 7, invoice.CustomerID)
	assert.Empty(t, invoice.Items)
	assert.False(t, invoice.CreatedAt.IsZero())
}

func TestInvoiceItem_LineTotal(t *testing.T) {
	item := InvoiceItem{
		ProductID: 1,
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("9.99"),
	}

	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("29.97")))
}

func TestInvoice_AddItem_PreservesOrder(t *testing.T) {
	invoice := NewInvoice(7)

	invoice.AddItem(InvoiceItem{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("9.99")})
	invoice.AddItem(InvoiceItem{ProductID: 5, Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")})

	assert.Len(t, invoice.Items, 2)
	assert.Equal(t, 1, invoice.Items[0].ProductID)
	assert.Equal(t, 5, invoice.Items[1].ProductID)
}

func TestInvoice_Total_EmptyInvoiceIsZero(t *testing.T) {
	invoice := NewInvoice(7)

	assert.True(t, invoice.Total().Equal(decimal.Zero))
}

func TestInvoice_Total_SumsLineTotals(t *testing.T) {
	invoice := NewInvoice(7)
	invoice.AddItem(InvoiceItem{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("9.99")})
	invoice.AddItem(InvoiceItem{ProductID: 5, Quantity: 2, UnitPrice: decimal.RequireFromString("4.50")})

	// 29.97 + 9.00
	assert.True(t, invoice.Total().Equal(decimal.RequireFromString("38.97")))
}
