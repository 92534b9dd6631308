package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"pos-service/internal/commands"
	"pos-service/internal/domain"
	apperrors "pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceService is the workflow surface the handler depends on
type InvoiceService interface {
	CreateInvoice(ctx context.Context, cmd commands.CreateInvoiceCommand) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id int) (*domain.Invoice, error)
}

type InvoiceHandler struct {
	logger  *zap.Logger
	service InvoiceService
}

func NewInvoiceHandler(logger *zap.Logger, service InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		logger:  logger,
		service: service,
	}
}

// CreateInvoice handles POST /api/invoices/create.
// Validation failures map to 400, unknown products to 404 and stock
// conflicts to 409; the body stays a flat {"error": message}.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cmd := commands.CreateInvoiceCommand{
		CustomerID: req.CustomerID,
		Items:      make([]commands.InvoiceItemCommand, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		cmd.Items = append(cmd.Items, commands.InvoiceItemCommand{
			ProductID: item.ProductID,
			Qty:       item.Qty,
		})
	}

	invoice, err := h.service.CreateInvoice(c.Request.Context(), cmd)
	if err != nil {
		h.writeError(c, err, "failed to create invoice")
		return
	}

	c.Header("Location", fmt.Sprintf("/api/invoices/%d", invoice.ID))
	c.JSON(http.StatusCreated, CreateInvoiceResponse{InvoiceID: invoice.ID})
}

// GetInvoice handles GET /api/invoices/:id with a real store lookup
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	invoice, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed to get invoice")
		return
	}

	items := make([]InvoiceItemResponse, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		items = append(items, InvoiceItemResponse{
			ProductID: item.ProductID,
			Qty:       item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal(),
		})
	}

	c.JSON(http.StatusOK, InvoiceResponse{
		InvoiceID:  invoice.ID,
		CustomerID: invoice.CustomerID,
		Items:      items,
		Total:      invoice.Total(),
	})
}

// HealthCheck handles GET /api/health
func (h *InvoiceHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pos-service",
	})
}

func (h *InvoiceHandler) writeError(c *gin.Context, err error, fallback string) {
	if stdErr, ok := err.(*apperrors.StandardError); ok {
		if stdErr.HTTPStatus() >= http.StatusInternalServerError {
			h.logger.Error("Request failed",
				zap.String("error_code", stdErr.Code),
				zap.String("details", stdErr.Details),
			)
		}
		c.JSON(stdErr.HTTPStatus(), gin.H{"error": stdErr.Message})
		return
	}
	h.logger.Error("Unhandled error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
