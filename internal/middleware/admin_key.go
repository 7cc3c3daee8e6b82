package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyMiddleware guards operator endpoints with a static deployment
// key. The key may also come in as a query parameter for clients that
// cannot set headers (the WebSocket feed page).
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	if adminKey == "" {
		log.Fatal("[Fatal] ADMIN_API_KEY is not set, operator endpoints unusable")
	}
	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-Admin-Key")
		if clientKey == "" {
			clientKey = c.Query("key")
		}

		if subtle.ConstantTimeCompare([]byte(clientKey), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin key"})
			return
		}
		c.Next()
	}
}
