package SessionRepository

import (
	"time"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// Create always inserts a new row. Logins never reuse a session; token
// rotation never calls this.
func (r *Repository) Create(request types.SessionCreateRequest) (types.Session, error) {
	defer utils.TimeTrack(time.Now(), "Session -> Create Session")

	var session types.Session

	query := `INSERT INTO sessions (user_id, ip_address, user_agent) VALUES ($1, $2, $3) RETURNING *`

	row := r.db.QueryRow(query, request.UserID, request.IPAddress, request.UserAgent)
	err := utils.ScanStructByDBTags(row, &session)
	if err != nil {
		return session, err
	}

	return session, nil
}
