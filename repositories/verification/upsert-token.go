package VerificationRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// Upsert keeps at most one live record per user per purpose; re-requesting
// a verification replaces the previous credential.
func (r *Repository) Upsert(userID uuid.UUID, purpose types.TokenPurpose, token string, expiresAt time.Time) (types.VerificationToken, error) {
	defer utils.TimeTrack(time.Now(), "Verification -> Upsert Token")

	var record types.VerificationToken

	query := `INSERT INTO verification_tokens (user_id, purpose, token, expires_at)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (user_id, purpose)
              DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = NOW()
              RETURNING *`

	row := r.db.QueryRow(query, userID, purpose, token, expiresAt)
	err := utils.ScanStructByDBTags(row, &record)
	if err != nil {
		return record, err
	}

	return record, nil
}
