package VerificationRepository

import (
	"database/sql"
)

// Repository holds the durable side of short-lived verification
// credentials (password reset, email verify, phone verify). The signed
// token alone is not enough: the matching record must still exist, which
// lets us invalidate a credential before its signature expires and makes
// each one consumable exactly once.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}
