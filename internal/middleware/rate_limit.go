package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// SubmitRateLimiter throttles form submissions per client IP. A real
// visitor submits the form at most a few times; anything faster is
// almost certainly a bot.
func SubmitRateLimiter() gin.HandlerFunc {
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		// 1 request per 2 seconds with a burst of 5, forgotten after an hour idle
		return rate.NewLimiter(rate.Every(2*time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"status":  "error",
			"message": "Too many submissions, slow down",
		})
	})
}
