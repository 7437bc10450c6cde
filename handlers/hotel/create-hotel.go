package HotelHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/middlewares"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// CreateHotel lists a property under the calling provider.
func (h *Handler) CreateHotel(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	var request types.HotelCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	hotel, err := h.HotelRepository.CreateHotel(authCtx.UserID, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the hotel.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"hotel":   hotel,
	})
}

// DeleteHotel removes a listing. The provider id is part of the match, so
// a provider can only delete their own properties.
func (h *Handler) DeleteHotel(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_hotel_id",
			"message": "The hotel id is not valid.",
		})
		return
	}

	if err := h.HotelRepository.DeleteHotel(hotelID, authCtx.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while deleting the hotel.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hotel deleted.",
	})
}
