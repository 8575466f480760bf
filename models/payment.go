package models

import "time"

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"

	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// PaymentRequest is the input of the simulated payment handler.
type PaymentRequest struct {
	UserID      string            `json:"userId"`
	Amount      float64           `json:"amount"`
	Method      string            `json:"method"` // "cash" or "card"
	Currency    string            `json:"currency"`
	Idempotency string            `json:"idempotency,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Description string            `json:"description,omitempty"`
}

type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	PaymentID string    `json:"paymentId,omitempty"`
}
