// File: homebook/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all your endpoint handlers into one struct.
type HandlerBundle struct {
	// Catalog endpoints
	GetAvailableServices gin.HandlerFunc
	GetServiceByID       gin.HandlerFunc

	// Booking session endpoints
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	SubmitAnswer    gin.HandlerFunc
	SelectAddress   gin.HandlerFunc
	StartDiscovery  gin.HandlerFunc
	ChooseVendor    gin.HandlerFunc
	VerifyContact   gin.HandlerFunc
	Pay             gin.HandlerFunc
	StartTracking   gin.HandlerFunc
	LeaveFeedback   gin.HandlerFunc
	Back            gin.HandlerFunc
	Forward         gin.HandlerFunc

	// Health
	Health gin.HandlerFunc
}

// NewHandlerBundle wires every booking endpoint of h.
func NewHandlerBundle(h *BookingHandler, health gin.HandlerFunc) *HandlerBundle {
	return &HandlerBundle{
		GetAvailableServices: h.GetAvailableServices,
		GetServiceByID:       h.GetServiceByID,
		InitiateSession:      h.InitiateSession,
		GetSession:           h.GetSession,
		CancelSession:        h.CancelSession,
		SubmitAnswer:         h.SubmitAnswer,
		SelectAddress:        h.SelectAddress,
		StartDiscovery:       h.StartDiscovery,
		ChooseVendor:         h.ChooseVendor,
		VerifyContact:        h.VerifyContact,
		Pay:                  h.Pay,
		StartTracking:        h.StartTracking,
		LeaveFeedback:        h.LeaveFeedback,
		Back:                 h.Back,
		Forward:              h.Forward,
		Health:               health,
	}
}
