package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery is the last line of defence against panics in handlers. The
// client always gets a generic 500; details are added only when
// showDetails is set (non-production environments).
func Recovery(showDetails bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		event := zerolog.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprint(recovered))
		if showDetails {
			event = event.Bytes("stack", debug.Stack())
		}
		event.Msgf("Unhandled exception for request %s %s", c.Request.Method, c.Request.URL.Path)

		body := gin.H{
			"error":   "internal_error",
			"message": "An unexpected error occurred.",
		}
		if showDetails {
			body["details"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
