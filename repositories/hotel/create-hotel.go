package HotelRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) CreateHotel(providerID uuid.UUID, request types.HotelCreateRequest) (types.Hotel, error) {
	defer utils.TimeTrack(time.Now(), "Hotel -> Create Hotel")

	var hotel types.Hotel

	query := `INSERT INTO hotels (provider_id, name, city, country, address, description, price_per_night, image_url)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING *`

	row := r.db.QueryRow(query, providerID, request.Name, request.City, request.Country,
		request.Address, request.Description, request.PricePerNight, request.ImageURL)
	err := utils.ScanStructByDBTags(row, &hotel)
	if err != nil {
		return hotel, err
	}

	return hotel, nil
}

func (r *Repository) DeleteHotel(hotelID, providerID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Hotel -> Delete Hotel")

	query := `DELETE FROM hotels WHERE id = $1 AND provider_id = $2`

	_, err := r.db.Exec(query, hotelID, providerID)
	return err
}
