package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/awebcode/backend-travel-trippz/configs"
	cache "github.com/awebcode/backend-travel-trippz/services"
)

func TestLoginRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := cache.NewCache(configs.LOGIN_RATE_WINDOW)
	router := gin.New()
	router.POST("/login", LoginRateLimit(store), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Real-IP", ip)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	for i := 0; i < configs.LOGIN_RATE_LIMIT; i++ {
		assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	}

	blocked := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	// A different client is not affected by the first one's window.
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}
