package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/models"
)

func TestProcessPayment(t *testing.T) {
	h := NewPaymentHandler(zap.NewNop(), clock.NewFake(epoch))

	card, err := h.ProcessPayment(context.Background(), models.PaymentRequest{UserID: "u1", Amount: 135, Method: models.PaymentMethodCard})
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPaid, card.Status)
	assert.Contains(t, card.PaymentID, "pi_")
	assert.Equal(t, "USD", card.Currency)
	assert.Equal(t, epoch, card.CreatedAt)

	cash, err := h.ProcessPayment(context.Background(), models.PaymentRequest{UserID: "u1", Amount: 110, Method: models.PaymentMethodCash, Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, models.InvoiceStatusPending, cash.Status)
	assert.Empty(t, cash.PaymentID)
	assert.Equal(t, "EUR", cash.Currency)
	assert.NotEqual(t, card.InvoiceID, cash.InvoiceID)

	out := outcomeFromInvoice(card)
	assert.Equal(t, card.InvoiceID, out.InvoiceID)
	assert.Equal(t, 135.0, out.Amount)
}

func TestProcessPaymentRejectsBadRequests(t *testing.T) {
	h := NewPaymentHandler(nil, clock.NewFake(epoch))
	ctx := context.Background()

	_, err := h.ProcessPayment(ctx, models.PaymentRequest{UserID: "u1", Amount: 10, Method: "bitcoin"})
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = h.ProcessPayment(ctx, models.PaymentRequest{UserID: "u1", Amount: 0, Method: models.PaymentMethodCard})
	assert.Error(t, err)

	_, err = h.ProcessPayment(ctx, models.PaymentRequest{Amount: 10, Method: models.PaymentMethodCard})
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = h.ProcessPayment(cancelled, models.PaymentRequest{UserID: "u1", Amount: 10, Method: models.PaymentMethodCard})
	assert.ErrorIs(t, err, context.Canceled)
}
