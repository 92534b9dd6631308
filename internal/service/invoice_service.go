package service

import (
	"context"
	"time"

	"pos-service/internal/commands"
	"pos-service/internal/domain"
	"pos-service/internal/events"
	"pos-service/internal/repository"
	apperrors "pos-service/pkg/errors"

	"go.uber.org/zap"
)

// InvoiceService orchestrates invoice creation: per-item validation, stock
// decrement, price snapshots, persistence and the commit boundary.
type InvoiceService struct {
	logger   *zap.Logger
	products repository.ProductRepository
	invoices repository.InvoiceRepository
	uow      repository.UnitOfWork
	eventBus events.EventPublisher
}

func NewInvoiceService(
	logger *zap.Logger,
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	uow repository.UnitOfWork,
	eventBus events.EventPublisher,
) *InvoiceService {
	return &InvoiceService{
		logger:   logger,
		products: products,
		invoices: invoices,
		uow:      uow,
		eventBus: eventBus,
	}
}

// CreateInvoice processes items strictly in list order and applies stock
// reductions as it goes. A failure aborts the whole call but earlier items'
// reductions stay applied; there is no compensation. That matches the
// behavior the service has always had and is asserted by tests.
func (s *InvoiceService) CreateInvoice(ctx context.Context, cmd commands.CreateInvoiceCommand) (*domain.Invoice, error) {
	if len(cmd.Items) == 0 {
		return nil, apperrors.NewValidationError(domain.ErrEmptyInvoice.Message)
	}

	invoice := domain.NewInvoice(cmd.CustomerID)

	for _, item := range cmd.Items {
		if item.Qty <= 0 {
			return nil, apperrors.NewValidationError(domain.ErrInvalidQuantity.Message)
		}

		product, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, apperrors.NewProductNotFound(item.ProductID)
		}
		if item.Qty > product.QuantityAvailable {
			return nil, apperrors.NewInsufficientStock(item.ProductID, product.QuantityAvailable, item.Qty)
		}

		// The availability check is repeated inside ReduceStock under the
		// store lock, so two concurrent invoices cannot oversell a product.
		updated, err := s.products.ReduceStock(ctx, item.ProductID, item.Qty)
		if err != nil {
			if err == domain.ErrProductNotFound {
				return nil, apperrors.NewProductNotFound(item.ProductID)
			}
			return nil, apperrors.NewInsufficientStock(item.ProductID, product.QuantityAvailable, item.Qty)
		}

		// Snapshot the unit price at the moment of processing
		invoice.AddItem(domain.InvoiceItem{
			ProductID: updated.ID,
			Quantity:  item.Qty,
			UnitPrice: updated.UnitPrice,
		})

		s.publish(ctx, events.StockReducedEvent{
			ProductID:  updated.ID,
			Quantity:   item.Qty,
			Remaining:  updated.QuantityAvailable,
			OccurredAt: time.Now(),
		})
	}

	created, err := s.invoices.Add(ctx, invoice)
	if err != nil {
		s.logger.Error("Failed to persist invoice", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create invoice", err)
	}

	if err := s.uow.Commit(ctx); err != nil {
		s.logger.Error("Failed to commit unit of work", zap.Error(err))
		return nil, apperrors.NewInternalError("failed to create invoice", err)
	}

	s.publish(ctx, events.InvoiceCreatedEvent{
		InvoiceID:  created.ID,
		CustomerID: created.CustomerID,
		ItemCount:  len(created.Items),
		Total:      created.Total(),
		OccurredAt: time.Now(),
	})

	s.logger.Info("Invoice created",
		zap.Int("invoice_id", created.ID),
		zap.Int("customer_id", created.CustomerID),
		zap.Int("items", len(created.Items)),
		zap.String("total", created.Total().String()),
	)
	return created, nil
}

// GetInvoice looks up a persisted invoice
func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*domain.Invoice, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInvoiceNotFound(id)
	}
	return invoice, nil
}

// publish is best-effort: a broker failure never fails the request
func (s *InvoiceService) publish(ctx context.Context, event interface{}) {
	if err := s.eventBus.Publish(ctx, event); err != nil {
		s.logger.Error("Failed to publish event", zap.Error(err))
	}
}
