package routes

import (
	"github.com/gin-gonic/gin"

	"homebook/handlers"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.GET("/services", hb.GetAvailableServices)
		booking.POST("/service-details", hb.GetServiceByID)

		booking.POST("/session", hb.InitiateSession) // intake conversation starts here
		session := booking.Group("/session/:sessionID")
		session.GET("", hb.GetSession)
		session.DELETE("", hb.CancelSession)
		session.POST("/answer", hb.SubmitAnswer)
		session.POST("/address", hb.SelectAddress)
		session.POST("/discovery", hb.StartDiscovery)
		session.POST("/vendor", hb.ChooseVendor)
		session.POST("/verify", hb.VerifyContact)
		session.POST("/pay", hb.Pay)
		session.POST("/tracking", hb.StartTracking)
		session.POST("/feedback", hb.LeaveFeedback)
		session.POST("/back", hb.Back)
		session.POST("/forward", hb.Forward)
	}
}
