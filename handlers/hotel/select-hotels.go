package HotelHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/middlewares"
)

// GetHotels lists properties with the validated pagination from the
// query string.
func (h *Handler) GetHotels(c *gin.Context) {
	query := middlewares.GetValidatedQuery(c)

	hotels, err := h.HotelRepository.SelectHotels(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while listing hotels.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"hotels":  hotels,
		"page":    query.Page,
		"limit":   query.Limit,
	})
}

// GetHotel returns a single listing.
func (h *Handler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_hotel_id",
			"message": "The hotel id is not valid.",
		})
		return
	}

	hotel, err := h.HotelRepository.SelectByID(hotelID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "hotel_not_found",
			"message": "Hotel not found.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"hotel":   hotel,
	})
}
