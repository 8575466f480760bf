package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homebook/services/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
	Logger = zap.NewNop()
}

func TestBookingErrorStatus(t *testing.T) {
	wrapped := fmt.Errorf("choose vendor during payment: %w", booking.ErrStageMismatch)

	status, code := BookingErrorStatus(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "stageMismatch", code)

	status, _ = BookingErrorStatus(booking.ErrSessionNotFound)
	assert.Equal(t, http.StatusNotFound, status)

	status, code = BookingErrorStatus(fmt.Errorf("failed to process payment: %w", booking.ErrInvalidPaymentMethod))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalidPayment", code)

	status, code = BookingErrorStatus(fmt.Errorf("redis down"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Empty(t, code)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Message)
}
