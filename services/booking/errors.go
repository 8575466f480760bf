package booking

import "fmt"

// BookingError is returned for requests the booking flow refuses. The
// package-level values below can be matched with errors.Is.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newBookingError(code, msg string) *BookingError {
	return &BookingError{Code: code, Message: msg}
}

var (
	ErrSessionNotFound      = newBookingError("sessionNotFound", "booking session not found or expired")
	ErrSessionClosed        = newBookingError("sessionClosed", "booking session is no longer active")
	ErrStageMismatch        = newBookingError("stageMismatch", "action does not belong to the current stage")
	ErrConversationOpen     = newBookingError("conversationOpen", "intake questions are not finished yet")
	ErrMissingAddress       = newBookingError("missingAddress", "a service address is required")
	ErrNoOffers             = newBookingError("noOffers", "vendor discovery has not produced offers")
	ErrUnknownOffer         = newBookingError("unknownOffer", "selected offer is not one of the discovered offers")
	ErrVendorAlreadyChosen  = newBookingError("vendorAlreadyChosen", "this request already has a vendor")
	ErrInvalidPhone         = newBookingError("invalidPhone", "a contact phone number is required")
	ErrInvalidRating        = newBookingError("invalidRating", "rating must be between 1 and 5")
	ErrDiscoveryRunning     = newBookingError("discoveryRunning", "vendor discovery is still running")
	ErrTrackingNotArrived   = newBookingError("trackingNotArrived", "vendor has not arrived yet")
	ErrInvalidPaymentMethod = newBookingError("invalidPayment", "unsupported payment method")
)
