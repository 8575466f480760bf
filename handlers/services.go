package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAvailableServices handles GET /api/booking/services.
func (h *BookingHandler) GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.BookingSvc.GetAvailableServices())
}

// GetServiceByID handles POST /api/booking/service-details. Unknown ids answer
// with the generic service and found=false, mirroring how a booking for them
// would run.
func (h *BookingHandler) GetServiceByID(c *gin.Context) {
	var body struct {
		ID string `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		getLogger(c, h.Logger).Error("GetServiceByID: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	id := strings.ToLower(strings.TrimSpace(body.ID))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing service ID",
			"message": "you must provide a service ID in the body",
		})
		return
	}

	details, found := h.BookingSvc.GetServiceByID(id)
	c.JSON(http.StatusOK, gin.H{"service": details, "found": found})
}
