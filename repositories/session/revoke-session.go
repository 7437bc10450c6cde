package SessionRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/utils"
)

// Revoke ends one session ("log out this device").
func (r *Repository) Revoke(sessionID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Session -> Revoke Session")

	query := `UPDATE sessions SET revoked_at = NOW() WHERE id = $1 AND revoked_at IS NULL`

	_, err := r.db.Exec(query, sessionID)
	return err
}

// RevokeAllExcept ends every other session ("log out other devices").
func (r *Repository) RevokeAllExcept(userID, keepSessionID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Session -> Revoke Other Sessions")

	query := `UPDATE sessions SET revoked_at = NOW() WHERE user_id = $1 AND id <> $2 AND revoked_at IS NULL`

	_, err := r.db.Exec(query, userID, keepSessionID)
	return err
}

// RevokeAll ends every session ("log out all devices", password reset).
func (r *Repository) RevokeAll(userID uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "Session -> Revoke All Sessions")

	query := `UPDATE sessions SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`

	_, err := r.db.Exec(query, userID)
	return err
}
