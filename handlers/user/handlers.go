package UserHandler

import (
	UserRepository "github.com/awebcode/backend-travel-trippz/repositories/user"
)

type Handler struct {
	UserRepository *UserRepository.Repository
}

func NewHandler(u *UserRepository.Repository) *Handler {
	return &Handler{UserRepository: u}
}
