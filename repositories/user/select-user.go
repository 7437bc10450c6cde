package UserRepository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) SelectByID(id uuid.UUID) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By ID")

	var user types.User

	query := `SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL`

	row := r.db.QueryRow(query, id)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}

func (r *Repository) SelectByEmail(email string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Email")

	var user types.User

	query := `SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL`

	row := r.db.QueryRow(query, strings.ToLower(strings.TrimSpace(email)))
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}

// SelectUsers lists accounts for the admin surface, soft-deleted ones
// included.
func (r *Repository) SelectUsers(query types.ValidatedQuery) ([]types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select Users")

	var users []types.User

	sqlQuery := `SELECT * FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(sqlQuery, query.Limit, query.Offset())
	if err != nil {
		return users, err
	}
	defer rows.Close()

	for rows.Next() {
		var user types.User
		if err := utils.ScanStructByDBTagsForRows(rows, &user); err != nil {
			return users, err
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return users, err
	}

	return users, nil
}

// SelectByLogin accepts either an email address or a phone number.
func (r *Repository) SelectByLogin(login string) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Select User By Login")

	var user types.User

	trimmed := strings.TrimSpace(login)
	query := `SELECT * FROM users WHERE (email = $1 OR phone_number = $2) AND deleted_at IS NULL`

	row := r.db.QueryRow(query, strings.ToLower(trimmed), trimmed)
	err := utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
