package BookingHandler

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/middlewares"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// CreateBooking reserves a stay. The total price is computed server-side
// from the hotel's nightly rate; the client never supplies an amount.
func (h *Handler) CreateBooking(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	var request types.BookingCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	if request.CheckIn.Before(time.Now().Truncate(24 * time.Hour)) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "check_in_past",
			"message": "The check-in date cannot be in the past.",
		})
		return
	}

	hotel, err := h.HotelRepository.SelectByID(request.HotelID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "hotel_not_found",
			"message": "Hotel not found.",
		})
		return
	}

	nights := int(math.Ceil(request.CheckOut.Sub(request.CheckIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	totalPrice := hotel.PricePerNight * float64(nights)

	booking, err := h.BookingRepository.CreateBooking(authCtx.UserID, request, totalPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the booking.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"booking": booking,
	})
}

// CancelBooking cancels the caller's own booking.
func (h *Handler) CancelBooking(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_booking_id",
			"message": "The booking id is not valid.",
		})
		return
	}

	if err := h.BookingRepository.CancelBooking(bookingID, authCtx.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while cancelling the booking.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled.",
	})
}
