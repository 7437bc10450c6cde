package UserRepository

import (
	"time"

	"github.com/awebcode/backend-travel-trippz/services/social"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (r *Repository) CreateNewUser(request types.UserCreateRequest) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Create User")

	var user types.User
	hashedPassword, err := utils.EncryptPassword(request.Password)
	if err != nil {
		return user, err
	}

	query := `INSERT INTO users (email, phone_number, display_name, hashed_password) VALUES ($1, $2, $3, $4) RETURNING *`

	row := r.db.QueryRow(query, request.Email, request.PhoneNumber, request.DisplayName, hashedPassword)
	err = utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}

// CreateSocialUser provisions an account from a provider-asserted
// identity. No local password exists, so a random unusable one is stored,
// and the email arrives pre-verified by the provider.
func (r *Repository) CreateSocialUser(identity social.Identity) (types.User, error) {
	defer utils.TimeTrack(time.Now(), "User -> Create Social User")

	var user types.User

	displayName := identity.DisplayName
	if displayName == "" {
		displayName = identity.Email
	}

	placeholderPassword, err := utils.EncryptPassword(utils.GenerateRandomString(32))
	if err != nil {
		return user, err
	}

	// Social-only accounts have no phone; a unique placeholder keeps the
	// column constraint satisfied until the user adds a real number.
	placeholderPhone := "social-" + utils.GenerateRandomString(12)

	query := `INSERT INTO users (email, phone_number, display_name, hashed_password, social_provider, email_verified)
              VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING *`

	row := r.db.QueryRow(query, identity.Email, placeholderPhone, displayName, placeholderPassword, identity.Provider)
	err = utils.ScanStructByDBTags(row, &user)
	if err != nil {
		return user, err
	}

	return user, nil
}
