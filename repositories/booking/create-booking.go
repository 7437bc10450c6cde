package BookingRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) CreateBooking(userID uuid.UUID, request types.BookingCreateRequest, totalPrice float64) (types.Booking, error) {
	defer utils.TimeTrack(time.Now(), "Booking -> Create Booking")

	var booking types.Booking

	query := `INSERT INTO bookings (user_id, hotel_id, check_in, check_out, guests, total_price)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`

	row := r.db.QueryRow(query, userID, request.HotelID, request.CheckIn, request.CheckOut, request.Guests, totalPrice)
	err := utils.ScanStructByDBTags(row, &booking)
	if err != nil {
		return booking, err
	}

	return booking, nil
}

func (r *Repository) CancelBooking(bookingID, userID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Booking -> Cancel Booking")

	query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`

	_, err := r.db.Exec(query, bookingID, userID, types.BookingStatusCancelled)
	return err
}
