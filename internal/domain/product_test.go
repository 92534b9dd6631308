package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	product := NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10)

	assert.Equal(t, 1, product.ID)
	assert.Equal(t, "Widget A", product.Name)
	assert.True(t, product.UnitPrice.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 10, product.QuantityAvailable)
}

func TestReduceStock_Success(t *testing.T) {
	product := NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10)

	err := product.ReduceStock(3)

	assert.NoError(t, err)
	assert.Equal(t, 7, product.QuantityAvailable)
}

func TestReduceStock_Success_ExactlyAllStock(t *testing.T) {
	product := NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10)

	err := product.ReduceStock(10)

	assert.NoError(t, err)
	assert.Equal(t, 0, product.QuantityAvailable)
}

func TestReduceStock_Error_ZeroQuantity(t *testing.T) {
	product := NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10)

	err := product.ReduceStock(0)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidQuantity, err)
	assert.Equal(t, 10, product.QuantityAvailable)
}

func TestReduceStock_Error_NegativeQuantity(t *testing.T) {
	product := NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10)

	err := product.ReduceStock(-5)

	assert.Error(t, err)
	assert.Equal(t, ErrInvalidQuantity, err)
	assert.Equal(t, 10, product.QuantityAvailable)
}

func TestReduceStock_Error_InsufficientStock(t *testing.T) {
	product := NewProduct(5, "Widget B", decimal.RequireFromString("4.50"), 5)

	err := product.ReduceStock(10)

	assert.Error(t, err)
	assert.Equal(t, ErrInsufficientStock, err)
	assert.Equal(t, 5, product.QuantityAvailable)
}
