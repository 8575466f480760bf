package booking

import (
	"context"

	"homebook/models"
)

// BookingSessionService drives booking attempts from intake to feedback.
type BookingSessionService interface {
	Initiate(ctx context.Context, userID, serviceID string) (*models.BookingSession, error)
	Answer(ctx context.Context, sessionID, text string) (*models.BookingSession, error)
	SelectAddress(ctx context.Context, sessionID, address string, location models.LatLng) (*models.BookingSession, error)
	StartDiscovery(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ChooseVendor(ctx context.Context, sessionID string, category models.OfferCategory) (*models.BookingSession, error)
	Verify(ctx context.Context, sessionID, phone string) (*models.BookingSession, error)
	Pay(ctx context.Context, sessionID, method string) (*models.BookingSession, error)
	StartTracking(ctx context.Context, sessionID string) (*models.BookingSession, error)
	LeaveFeedback(ctx context.Context, sessionID string, rating int, comment string) (*models.BookingSession, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Forward(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Cancel(ctx context.Context, sessionID string) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)

	GetAvailableServices() []models.ServiceDetails
	GetServiceByID(serviceID string) (models.ServiceDetails, bool)
}
