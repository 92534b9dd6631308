package repository

import (
	"context"
	"sync"
	"sync/atomic"

	"pos-service/internal/domain"
)

// invoiceIDSeed keeps generated ids above any pre-seeded data; the first
// assigned id is invoiceIDSeed+1.
const invoiceIDSeed = 1000

// InvoiceRepository defines the interface for invoice persistence.
// Invoices are immutable once added, so no update or delete is exposed.
type InvoiceRepository interface {
	// Add assigns a fresh unique id and stores the invoice, returning the
	// record with the id populated
	Add(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)
	// FindByID returns the invoice or domain.ErrInvoiceNotFound
	FindByID(ctx context.Context, id int) (*domain.Invoice, error)
}

// InMemoryInvoiceRepository holds invoices in a mutex-guarded map with an
// atomically incremented id counter
type InMemoryInvoiceRepository struct {
	mu        sync.RWMutex
	invoices  map[int]*domain.Invoice
	idCounter int64
}

func NewInvoiceRepository() *InMemoryInvoiceRepository {
	return &InMemoryInvoiceRepository{
		invoices:  make(map[int]*domain.Invoice),
		idCounter: invoiceIDSeed,
	}
}

func (r *InMemoryInvoiceRepository) Add(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	id := int(atomic.AddInt64(&r.idCounter, 1))
	invoice.ID = id

	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *invoice
	clone.Items = append([]domain.InvoiceItem(nil), invoice.Items...)
	r.invoices[id] = &clone
	return invoice, nil
}

func (r *InMemoryInvoiceRepository) FindByID(ctx context.Context, id int) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, exists := r.invoices[id]
	if !exists {
		return nil, domain.ErrInvoiceNotFound
	}
	clone := *invoice
	clone.Items = append([]domain.InvoiceItem(nil), invoice.Items...)
	return &clone, nil
}
