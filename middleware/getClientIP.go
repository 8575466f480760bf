package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP picks the address the rate limiter keys on. Only the first
// X-Forwarded-For hop names the client; a hop that does not parse as an IP
// is ignored so a garbled header cannot mint fresh limiter buckets.
func getClientIP(c *gin.Context) string {
	if first, _, _ := strings.Cut(c.GetHeader("X-Forwarded-For"), ","); first != "" {
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	if ip := net.ParseIP(strings.TrimSpace(c.GetHeader("X-Real-IP"))); ip != nil {
		return ip.String()
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
