package repository

import (
	"context"
	"sync"

	"pos-service/internal/domain"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID returns the product or domain.ErrProductNotFound
	FindByID(ctx context.Context, id int) (*domain.Product, error)
	// Save upserts a product record
	Save(ctx context.Context, product *domain.Product) error
	// ReduceStock atomically checks availability and decrements stock,
	// returning the updated product. The check and the decrement happen
	// under one lock so two concurrent sales cannot oversell a product.
	ReduceStock(ctx context.Context, id int, quantity int) (*domain.Product, error)
}

// InMemoryProductRepository holds products in a mutex-guarded map
type InMemoryProductRepository struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
}

func NewProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: make(map[int]*domain.Product),
	}
}

// FindByID hands out a copy: mutations only go through Save or ReduceStock
func (r *InMemoryProductRepository) FindByID(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *InMemoryProductRepository) Save(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *InMemoryProductRepository) ReduceStock(ctx context.Context, id int, quantity int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, exists := r.products[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	if err := product.ReduceStock(quantity); err != nil {
		return nil, err
	}
	clone := *product
	return &clone, nil
}
