package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/models"
)

// --- Interfaces ---
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// --- PaymentHandler Implementation ---
// SimulatedPaymentHandler settles payments locally; no processor is called.
type SimulatedPaymentHandler struct {
	logger *zap.Logger
	clk    clock.Clock
}

// --- NewPaymentHandler Constructor ---
func NewPaymentHandler(logger *zap.Logger, clk clock.Clock) *SimulatedPaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimulatedPaymentHandler{logger: logger, clk: clk}
}

// --- ProcessPayment Entry Point ---
func (h *SimulatedPaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := h.clk.Now()
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  currency,
		Method:    req.Method,
		Status:    models.InvoiceStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch req.Method {
	case models.PaymentMethodCard:
		return h.processCardPayment(inv), nil
	default:
		return h.processCashPayment(inv), nil
	}
}

// --- Card Payment Processing ---
func (h *SimulatedPaymentHandler) processCardPayment(inv *models.Invoice) *models.Invoice {
	inv.PaymentID = "pi_" + uuid.New().String()
	inv.Status = models.InvoiceStatusPaid
	inv.UpdatedAt = h.clk.Now()

	h.logger.Info("Card payment successful", zap.String("invoice", inv.InvoiceID), zap.Float64("amount", inv.Amount))
	return inv
}

// --- Cash Payment Processing ---
func (h *SimulatedPaymentHandler) processCashPayment(inv *models.Invoice) *models.Invoice {
	// cash is collected by the vendor on arrival
	inv.UpdatedAt = h.clk.Now()

	h.logger.Info("Cash payment recorded", zap.String("invoice", inv.InvoiceID), zap.Float64("amount", inv.Amount))
	return inv
}

// --- Validator ---
func validateRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.UserID == "" {
		return errors.New("missing user ID")
	}
	if req.Method != models.PaymentMethodCard && req.Method != models.PaymentMethodCash {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// outcomeFromInvoice is what the payment stage writes into the context.
func outcomeFromInvoice(inv *models.Invoice) models.PaymentOutcome {
	return models.PaymentOutcome{
		InvoiceID: inv.InvoiceID,
		PaymentID: inv.PaymentID,
		Method:    inv.Method,
		Amount:    inv.Amount,
		Currency:  inv.Currency,
		Status:    inv.Status,
	}
}
