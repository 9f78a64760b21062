package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders forbids framing and MIME sniffing on every response
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
