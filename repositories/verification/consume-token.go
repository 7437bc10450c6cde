package VerificationRepository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// Consume deletes the record in the same statement that matches it, so a
// credential is spent exactly once: a second presentation finds no row
// and fails as not-found, even under concurrent attempts.
func (r *Repository) Consume(userID uuid.UUID, purpose types.TokenPurpose, token string) error {
	defer utils.TimeTrack(time.Now(), "Verification -> Consume Token")

	query := `DELETE FROM verification_tokens
              WHERE user_id = $1 AND purpose = $2 AND token = $3 AND expires_at > NOW()`

	result, err := r.db.Exec(query, userID, purpose, token)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Delete drops a live record without consuming it, used when the flow is
// cancelled (e.g. all reset credentials after a password change).
func (r *Repository) Delete(userID uuid.UUID, purpose types.TokenPurpose) error {
	defer utils.TimeTrack(time.Now(), "Verification -> Delete Token")

	query := `DELETE FROM verification_tokens WHERE user_id = $1 AND purpose = $2`

	_, err := r.db.Exec(query, userID, purpose)
	return err
}
