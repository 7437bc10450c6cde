package BookingHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/middlewares"
)

// ListBookings serves the admin overview across all users.
func (h *Handler) ListBookings(c *gin.Context) {
	query := middlewares.GetValidatedQuery(c)

	bookings, err := h.BookingRepository.SelectBookings(query)
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
