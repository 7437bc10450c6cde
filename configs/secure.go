package configs

import (
	"github.com/gin-gonic/gin"
)

// SecureConfig sets baseline security headers on every response.
func SecureConfig(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
	c.Header("X-XSS-Protection", "0")

	if gin.Mode() == gin.ReleaseMode {
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
	}

	c.Next()
}
