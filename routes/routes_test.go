package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/handlers"
	"homebook/services/booking"
)

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := booking.NewBookingSessionService(clock.NewFake(time.Unix(0, 0)), booking.DefaultSettings(), nil, nil, zap.NewNop())
	hb := handlers.NewHandlerBundle(handlers.NewBookingHandler(svc, zap.NewNop()), HealthHandler)

	r := gin.New()
	RegisterRoutes(r, hb)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /api/booking/services",
		"POST /api/booking/session",
		"GET /api/booking/session/:sessionID",
		"DELETE /api/booking/session/:sessionID",
		"POST /api/booking/session/:sessionID/discovery",
		"POST /api/booking/session/:sessionID/forward",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
