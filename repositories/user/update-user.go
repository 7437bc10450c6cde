package UserRepository

import (
	"time"

	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Last Login")

	query := `UPDATE users SET last_login = $2, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(query, id, at)
	return err
}

func (r *Repository) UpdatePassword(id uuid.UUID, newPassword string) error {
	defer utils.TimeTrack(time.Now(), "User -> Update Password")

	hashedPassword, err := utils.EncryptPassword(newPassword)
	if err != nil {
		return err
	}

	query := `UPDATE users SET hashed_password = $2, updated_at = NOW() WHERE id = $1`

	_, err = r.db.Exec(query, id, hashedPassword)
	return err
}

func (r *Repository) MarkEmailVerified(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "User -> Mark Email Verified")

	query := `UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *Repository) MarkPhoneVerified(id uuid.UUID) error {
	defer utils.TimeTrack(time.Now(), "User -> Mark Phone Verified")

	query := `UPDATE users SET phone_verified = TRUE, updated_at = NOW() WHERE id = $1`

	_, err := r.db.Exec(query, id)
	return err
}
