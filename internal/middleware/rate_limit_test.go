package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRateLimiterThrottlesAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit", SubmitRateLimiter(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	fire := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// the burst of 5 goes through
	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, fire().Code, "request %d within burst", i+1)
	}

	// the sixth is throttled with the uniform error-status object
	w := fire()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Too many submissions, slow down"}`, w.Body.String())
}

func TestSubmitRateLimiterKeysByClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/submit", SubmitRateLimiter(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	fire := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// exhaust one client's burst
	for i := 0; i < 6; i++ {
		fire("203.0.113.8:40000")
	}
	require.Equal(t, http.StatusTooManyRequests, fire("203.0.113.8:40000").Code)

	// a different client is unaffected
	assert.Equal(t, http.StatusOK, fire("203.0.113.9:40000").Code)
}
