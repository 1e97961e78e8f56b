package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware sets the Cache-Control header on every response of
// a route group. Used for the static challenge tables, which only change on
// deploy.
func CacheControlMiddleware(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
