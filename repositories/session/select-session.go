package SessionRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// Select returns the live session only when both the id and the owning
// user match, so a token cannot ride on another user's session.
func (r *Repository) Select(sessionID, userID uuid.UUID) (types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Select Session")

	var session types.Session

	query := `SELECT * FROM sessions WHERE id = $1 AND user_id = $2 AND revoked_at IS NULL`

	row := r.db.QueryRow(query, sessionID, userID)
	err := utils.ScanStructByDBTags(row, &session)
	if err != nil {
		return session, err
	}

	return session, nil
}

// SelectActiveByUserID lists the user's live sessions for the devices view.
func (r *Repository) SelectActiveByUserID(userID uuid.UUID) ([]types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Select Active Sessions")

	var sessions []types.Session

	query := `SELECT * FROM sessions WHERE user_id = $1 AND revoked_at IS NULL ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return sessions, err
	}
	defer rows.Close()

	for rows.Next() {
		var session types.Session
		if err := utils.ScanStructByDBTagsForRows(rows, &session); err != nil {
			return sessions, err
		}
		sessions = append(sessions, session)
	}

	if err = rows.Err(); err != nil {
		return sessions, err
	}

	return sessions, nil
}
