package BookingHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/middlewares"
)

// GetMyBookings lists the caller's own bookings.
func (h *Handler) GetMyBookings(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	query := middlewares.GetValidatedQuery(c)

	bookings, err := h.BookingRepository.SelectByUserID(authCtx.UserID, query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while listing bookings.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bookings": bookings,
		"page":     query.Page,
		"limit":    query.Limit,
	})
}
