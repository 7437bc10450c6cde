package SessionRepository

import (
	"database/sql"
)

// Repository is the server-side source of truth for login liveness. The
// auth middleware consults it on every request; the logout handlers are
// its only mutating callers besides Create.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}
