package models

import "time"

// Verification records the contact confirmation step.
type Verification struct {
	Phone      string    `json:"phone"`
	VerifiedAt time.Time `json:"verifiedAt"`
}

// PaymentOutcome is what the payment stage leaves behind in the context.
type PaymentOutcome struct {
	InvoiceID string  `json:"invoiceId"`
	PaymentID string  `json:"paymentId,omitempty"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"` // "paid" or "pending"
}

// Feedback is the rating left after the visit.
type Feedback struct {
	Rating  int    `json:"rating"` // 1..5
	Comment string `json:"comment,omitempty"`
}

// RequestContext accumulates the user's selections as a booking progresses.
// It is treated as immutable: stage transitions work on a Clone.
type RequestContext struct {
	ServiceID      string          `json:"serviceId"`
	Address        *string         `json:"address,omitempty"`
	Location       *LatLng         `json:"location,omitempty"`
	Answers        []string        `json:"answers"`
	QuestionLabels []string        `json:"questionLabels"`
	Offers         []VendorOffer   `json:"offers,omitempty"`
	ChosenVendor   *VendorOffer    `json:"chosenVendor,omitempty"`
	Verification   *Verification   `json:"verification,omitempty"`
	Payment        *PaymentOutcome `json:"payment,omitempty"`
	ArrivedAt      *time.Time      `json:"arrivedAt,omitempty"`
	Feedback       *Feedback       `json:"feedback,omitempty"`
}

// Clone returns a deep copy so the caller can add fields without touching
// snapshots held elsewhere.
func (rc RequestContext) Clone() RequestContext {
	out := rc
	out.Answers = append([]string{}, rc.Answers...)
	out.QuestionLabels = append([]string{}, rc.QuestionLabels...)
	if rc.Offers != nil {
		out.Offers = append([]VendorOffer{}, rc.Offers...)
	}
	if rc.Address != nil {
		a := *rc.Address
		out.Address = &a
	}
	if rc.Location != nil {
		l := *rc.Location
		out.Location = &l
	}
	if rc.ChosenVendor != nil {
		v := *rc.ChosenVendor
		out.ChosenVendor = &v
	}
	if rc.Verification != nil {
		v := *rc.Verification
		out.Verification = &v
	}
	if rc.Payment != nil {
		p := *rc.Payment
		out.Payment = &p
	}
	if rc.ArrivedAt != nil {
		t := *rc.ArrivedAt
		out.ArrivedAt = &t
	}
	if rc.Feedback != nil {
		f := *rc.Feedback
		out.Feedback = &f
	}
	return out
}
