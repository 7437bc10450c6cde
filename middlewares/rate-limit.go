package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/configs"
	cache "github.com/awebcode/backend-travel-trippz/services"
	"github.com/awebcode/backend-travel-trippz/utils"
)

type rateWindow struct {
	Count         int       `json:"count"`
	WindowResetAt time.Time `json:"windowResetAt"`
}

// LoginRateLimit throttles credential endpoints per client IP so the
// password verifier cannot be used as an oracle.
func LoginRateLimit(store *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "login_rate_limit:" + utils.GetTrueClientIP(c)
		now := time.Now()

		window := rateWindow{WindowResetAt: now.Add(configs.LOGIN_RATE_WINDOW)}
		if data, exists := store.Get(key); exists {
			if err := json.Unmarshal(data, &window); err != nil || now.After(window.WindowResetAt) {
				window = rateWindow{WindowResetAt: now.Add(configs.LOGIN_RATE_WINDOW)}
			}
		}

		if window.Count >= configs.LOGIN_RATE_LIMIT {
			retryAfter := max(int(time.Until(window.WindowResetAt).Seconds()), 0)
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))

			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "rate_limit_exceeded",
				"message": "Too many attempts. Please try again later.",
			})
			c.Abort()
			return
		}

		window.Count++
		if data, err := json.Marshal(window); err == nil {
			store.SetWithTTL(key, data, time.Until(window.WindowResetAt))
		}

		c.Next()
	}
}
