package repository

import (
	"context"
	"sync"
	"testing"

	"pos-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func seedWidgetA(t *testing.T, repo *InMemoryProductRepository) {
	t.Helper()
	err := repo.Save(context.Background(), domain.NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 10))
	assert.NoError(t, err)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo := NewProductRepository()

	product, err := repo.FindByID(context.Background(), 42)

	assert.Nil(t, product)
	assert.Equal(t, domain.ErrProductNotFound, err)
}

func TestProductRepository_Save_CreatesWhenAbsent(t *testing.T) {
	repo := NewProductRepository()
	seedWidgetA(t, repo)

	product, err := repo.FindByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "Widget A", product.Name)
	assert.Equal(t, 10, product.QuantityAvailable)
}

func TestProductRepository_Save_ReplacesExisting(t *testing.T) {
	repo := NewProductRepository()
	seedWidgetA(t, repo)

	err := repo.Save(context.Background(), domain.NewProduct(1, "Widget A v2", decimal.RequireFromString("12.00"), 3))
	assert.NoError(t, err)

	product, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Widget A v2", product.Name)
	assert.Equal(t, 3, product.QuantityAvailable)
}

func TestProductRepository_FindByID_ReturnsCopy(t *testing.T) {
	repo := NewProductRepository()
	seedWidgetA(t, repo)

	product, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)

	// Mutating the returned record must not change the stored one
	product.QuantityAvailable = 0

	stored, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, stored.QuantityAvailable)
}

func TestProductRepository_ReduceStock_Success(t *testing.T) {
	repo := NewProductRepository()
	seedWidgetA(t, repo)

	updated, err := repo.ReduceStock(context.Background(), 1, 3)

	assert.NoError(t, err)
	assert.Equal(t, 7, updated.QuantityAvailable)

	stored, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 7, stored.QuantityAvailable)
}

func TestProductRepository_ReduceStock_NotFound(t *testing.T) {
	repo := NewProductRepository()

	updated, err := repo.ReduceStock(context.Background(), 42, 1)

	assert.Nil(t, updated)
	assert.Equal(t, domain.ErrProductNotFound, err)
}

func TestProductRepository_ReduceStock_Insufficient(t *testing.T) {
	repo := NewProductRepository()
	seedWidgetA(t, repo)

	updated, err := repo.ReduceStock(context.Background(), 1, 11)

	assert.Nil(t, updated)
	assert.Equal(t, domain.ErrInsufficientStock, err)

	stored, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 10, stored.QuantityAvailable)
}

func TestProductRepository_ReduceStock_NoOversellUnderConcurrency(t *testing.T) {
	repo := NewProductRepository()
	err := repo.Save(context.Background(), domain.NewProduct(1, "Widget A", decimal.RequireFromString("9.99"), 100))
	assert.NoError(t, err)

	var wg sync.WaitGroup
	successes := make(chan struct{}, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.ReduceStock(context.Background(), 1, 1); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}

	stored, err := repo.FindByID(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 100, count)
	assert.Equal(t, 0, stored.QuantityAvailable)
}
