package types

import (
	"time"

	"github.com/google/uuid"
)

// Table Model (database/migrations/00002.travel.up.sql)
type Hotel struct {
	ID            uuid.UUID `db:"id" json:"id"`
	ProviderID    uuid.UUID `db:"provider_id" json:"providerId"`
	Name          string    `db:"name" json:"name"`
	City          string    `db:"city" json:"city"`
	Country       string    `db:"country" json:"country"`
	Address       string    `db:"address" json:"address"`
	Description   string    `db:"description" json:"description"`
	PricePerNight float64   `db:"price_per_night" json:"pricePerNight"`
	ImageURL      string    `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}

// HotelCreateRequest - service providers list their properties
type HotelCreateRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=120"`
	City          string  `json:"city" binding:"required"`
	Country       string  `json:"country" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	Description   string  `json:"description"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	ImageURL      string  `json:"imageUrl"`
}

// BookingStatus - booking status enum type
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Table Model (database/migrations/00002.travel.up.sql)
type Booking struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	UserID     uuid.UUID     `db:"user_id" json:"userId"`
	HotelID    uuid.UUID     `db:"hotel_id" json:"hotelId"`
	CheckIn    time.Time     `db:"check_in" json:"checkIn"`
	CheckOut   time.Time     `db:"check_out" json:"checkOut"`
	Guests     int           `db:"guests" json:"guests"`
	TotalPrice float64       `db:"total_price" json:"totalPrice"`
	Status     BookingStatus `db:"status" json:"status"`
	CreatedAt  time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `db:"updated_at" json:"updatedAt"`
}

// BookingCreateRequest - validation only; availability math lives in the
// booking engine, not here.
type BookingCreateRequest struct {
	HotelID  uuid.UUID `json:"hotelId" binding:"required"`
	CheckIn  time.Time `json:"checkIn" binding:"required"`
	CheckOut time.Time `json:"checkOut" binding:"required,gtfield=CheckIn"`
	Guests   int       `json:"guests" binding:"required,min=1,max=12"`
}
