package ImageHandler

import (
	StorageRepository "github.com/awebcode/backend-travel-trippz/repositories/storage"
)

type Handler struct {
	StorageRepository *StorageRepository.Repository
}

func NewHandler(s *StorageRepository.Repository) *Handler {
	return &Handler{StorageRepository: s}
}
