package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

func EncryptPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// CheckPassword returns the same result in the same time whether the hash
// belongs to the user or not; callers surface one generic error for both.
func CheckPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
