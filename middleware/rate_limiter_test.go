package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(2, nil))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", ip+", 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, hit("1.1.1.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("1.1.1.1"))
	assert.Equal(t, http.StatusNoContent, hit("2.2.2.2"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": " 3.3.3.3 , 4.4.4.4"}, "5.5.5.5:80", "3.3.3.3"},
		{"real ip", map[string]string{"X-Real-IP": "6.6.6.6"}, "5.5.5.5:80", "6.6.6.6"},
		{"remote addr", nil, "5.5.5.5:80", "5.5.5.5"},
		{"garbled forwarded hop", map[string]string{"X-Forwarded-For": "not-an-ip, 4.4.4.4"}, "5.5.5.5:80", "5.5.5.5"},
		{"only first hop counts", map[string]string{"X-Forwarded-For": "7.7.7.7,8.8.8.8", "X-Real-IP": "6.6.6.6"}, "5.5.5.5:80", "7.7.7.7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}
