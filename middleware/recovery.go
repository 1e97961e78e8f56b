package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

// EnhancedRecoveryMiddleware turns panics into 500 responses, with the
// request id attached so the log line can be matched to the client report.
func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := c.GetString("request_id")
				log.Printf("Panic recovered (request %s): %v", requestID, err)
				TrackError("panic")
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
