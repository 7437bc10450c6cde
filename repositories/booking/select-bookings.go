package BookingRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// SelectBookings lists bookings across all users for the admin surface.
func (r *Repository) SelectBookings(query types.ValidatedQuery) ([]types.Booking, error) {
	defer utils.TimeTrack(time.Now(), "Booking -> Select Bookings")

	var bookings []types.Booking

	sqlQuery := `SELECT * FROM bookings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(sqlQuery, query.Limit, query.Offset())
	if err != nil {
		return bookings, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking types.Booking
		if err := utils.ScanStructByDBTagsForRows(rows, &booking); err != nil {
			return bookings, err
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return bookings, err
	}

	return bookings, nil
}

// SelectByUserID lists the caller's own bookings only; cross-user reads go
// through the admin surface.
func (r *Repository) SelectByUserID(userID uuid.UUID, query types.ValidatedQuery) ([]types.Booking, error) {
	defer utils.TimeTrack(time.Now(), "Booking -> Select Bookings By User")

	var bookings []types.Booking

	sqlQuery := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(sqlQuery, userID, query.Limit, query.Offset())
	if err != nil {
		return bookings, err
	}
	defer rows.Close()

	for rows.Next() {
		var booking types.Booking
		if err := utils.ScanStructByDBTagsForRows(rows, &booking); err != nil {
			return bookings, err
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return bookings, err
	}

	return bookings, nil
}
