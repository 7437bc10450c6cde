package HotelRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) SelectByID(hotelID uuid.UUID) (types.Hotel, error) {
	defer utils.TimeTrack(time.Now(), "Hotel -> Select Hotel By ID")

	var hotel types.Hotel

	query := `SELECT * FROM hotels WHERE id = $1`

	row := r.db.QueryRow(query, hotelID)
	err := utils.ScanStructByDBTags(row, &hotel)
	if err != nil {
		return hotel, err
	}

	return hotel, nil
}

func (r *Repository) SelectHotels(query types.ValidatedQuery) ([]types.Hotel, error) {
	defer utils.TimeTrack(time.Now(), "Hotel -> Select Hotels")

	var hotels []types.Hotel

	sqlQuery := `SELECT * FROM hotels ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(sqlQuery, query.Limit, query.Offset())
	if err != nil {
		return hotels, err
	}
	defer rows.Close()

	for rows.Next() {
		var hotel types.Hotel
		if err := utils.ScanStructByDBTagsForRows(rows, &hotel); err != nil {
			return hotels, err
		}
		hotels = append(hotels, hotel)
	}

	if err = rows.Err(); err != nil {
		return hotels, err
	}

	return hotels, nil
}
