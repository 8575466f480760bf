package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"homebook/models"
	"homebook/services/booking"
	"homebook/utils"
)

// BookingHandler exposes the booking session service over HTTP.
type BookingHandler struct {
	BookingSvc booking.BookingSessionService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
		UserID    string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = input.UserID
	}

	session, err := h.BookingSvc.Initiate(c.Request.Context(), userID, strings.ToLower(input.ServiceID))
	if err != nil {
		utils.BookingError(c, "failed to initiate booking session", err)
		return
	}
	getLogger(c, h.Logger).Info("InitiateSession: session created",
		zap.String("sessionID", session.SessionID), zap.String("serviceID", session.ServiceID))
	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.BookingSvc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		utils.BookingError(c, "booking session not found or expired", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.BookingSvc.Cancel(c.Request.Context(), sessionID); err != nil {
		utils.BookingError(c, "failed to cancel booking session", err)
		return
	}
	getLogger(c, h.Logger).Info("CancelSession: session cancelled", zap.String("sessionID", sessionID))
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled", "sessionID": sessionID})
}

// SubmitAnswer handles POST /api/booking/session/:sessionID/answer.
func (h *BookingHandler) SubmitAnswer(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, "failed to submit answer")(h.BookingSvc.Answer(c.Request.Context(), c.Param("sessionID"), input.Text))
}

// SelectAddress handles POST /api/booking/session/:sessionID/address.
func (h *BookingHandler) SelectAddress(c *gin.Context) {
	var input struct {
		Address string  `json:"address" binding:"required"`
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	loc := models.LatLng{Lat: input.Lat, Lng: input.Lng}
	h.respond(c, "failed to select address")(h.BookingSvc.SelectAddress(c.Request.Context(), c.Param("sessionID"), input.Address, loc))
}

// StartDiscovery handles POST /api/booking/session/:sessionID/discovery.
func (h *BookingHandler) StartDiscovery(c *gin.Context) {
	h.respond(c, "failed to start vendor discovery")(h.BookingSvc.StartDiscovery(c.Request.Context(), c.Param("sessionID")))
}

// ChooseVendor handles POST /api/booking/session/:sessionID/vendor.
func (h *BookingHandler) ChooseVendor(c *gin.Context) {
	var input struct {
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	category := models.OfferCategory(strings.ToLower(strings.TrimSpace(input.Category)))
	h.respond(c, "failed to choose vendor")(h.BookingSvc.ChooseVendor(c.Request.Context(), c.Param("sessionID"), category))
}

// VerifyContact handles POST /api/booking/session/:sessionID/verify.
func (h *BookingHandler) VerifyContact(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, "failed to verify contact")(h.BookingSvc.Verify(c.Request.Context(), c.Param("sessionID"), input.Phone))
}

// Pay handles POST /api/booking/session/:sessionID/pay.
func (h *BookingHandler) Pay(c *gin.Context) {
	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, "payment failed")(h.BookingSvc.Pay(c.Request.Context(), c.Param("sessionID"), input.Method))
}

// StartTracking handles POST /api/booking/session/:sessionID/tracking.
func (h *BookingHandler) StartTracking(c *gin.Context) {
	h.respond(c, "failed to start tracking")(h.BookingSvc.StartTracking(c.Request.Context(), c.Param("sessionID")))
}

// LeaveFeedback handles POST /api/booking/session/:sessionID/feedback.
func (h *BookingHandler) LeaveFeedback(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	h.respond(c, "failed to leave feedback")(h.BookingSvc.LeaveFeedback(c.Request.Context(), c.Param("sessionID"), input.Rating, input.Comment))
}

// Back handles POST /api/booking/session/:sessionID/back.
func (h *BookingHandler) Back(c *gin.Context) {
	h.respond(c, "failed to go back")(h.BookingSvc.Back(c.Request.Context(), c.Param("sessionID")))
}

// Forward handles POST /api/booking/session/:sessionID/forward.
func (h *BookingHandler) Forward(c *gin.Context) {
	h.respond(c, "failed to go forward")(h.BookingSvc.Forward(c.Request.Context(), c.Param("sessionID")))
}

// respond writes the session, or the error mapped to its HTTP status.
func (h *BookingHandler) respond(c *gin.Context, message string) func(*models.BookingSession, error) {
	return func(session *models.BookingSession, err error) {
		if err != nil {
			utils.BookingError(c, message, err)
			return
		}
		c.JSON(http.StatusOK, session)
	}
}
