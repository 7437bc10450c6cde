package BookingHandler

import (
	BookingRepository "github.com/awebcode/backend-travel-trippz/repositories/booking"
	HotelRepository "github.com/awebcode/backend-travel-trippz/repositories/hotel"
)

type Handler struct {
	BookingRepository *BookingRepository.Repository
	HotelRepository   *HotelRepository.Repository
}

func NewHandler(b *BookingRepository.Repository, h *HotelRepository.Repository) *Handler {
	return &Handler{BookingRepository: b, HotelRepository: h}
}
