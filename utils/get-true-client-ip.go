package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func GetTrueClientIP(c *gin.Context) string {
	// X-Real-IP is usually set by nginx in front of us.
	ip := c.Request.Header.Get("X-Real-IP")
	if ip != "" {
		return ip
	}

	// Otherwise take the last hop of X-Forwarded-For.
	forwardedFor := c.Request.Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if len(ips) > 0 {
			lastIP := strings.TrimSpace(ips[len(ips)-1])
			if lastIP != "" {
				return lastIP
			}
		}
	}

	return c.ClientIP()
}
