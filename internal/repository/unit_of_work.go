package repository

import "context"

// UnitOfWork marks the end of a logical transaction. The in-memory stores
// are not transactional, so Commit is a no-op today, but the workflow calls
// it exactly once after all mutations so a future durable backend can batch
// the store writes and the commit into one atomic operation.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// InMemoryUnitOfWork is the no-op implementation backing the in-memory stores
type InMemoryUnitOfWork struct{}

func NewUnitOfWork() *InMemoryUnitOfWork {
	return &InMemoryUnitOfWork{}
}

func (u *InMemoryUnitOfWork) Commit(ctx context.Context) error {
	// Nothing to flush for the in-memory stores
	return nil
}
