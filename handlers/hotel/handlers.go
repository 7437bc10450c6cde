package HotelHandler

import (
	HotelRepository "github.com/awebcode/backend-travel-trippz/repositories/hotel"
)

type Handler struct {
	HotelRepository *HotelRepository.Repository
}

func NewHandler(h *HotelRepository.Repository) *Handler {
	return &Handler{HotelRepository: h}
}
