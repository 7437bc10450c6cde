package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptAndCheckPassword(t *testing.T) {
	hashed, err := EncryptPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)

	assert.True(t, CheckPassword("correct horse battery staple", hashed))
	assert.False(t, CheckPassword("wrong password", hashed))
	assert.False(t, CheckPassword("", hashed))
}

func TestGenerateRandomString(t *testing.T) {
	value := GenerateRandomString(32)
	assert.Len(t, value, 32)

	for _, r := range value {
		assert.True(t, strings.ContainsRune(Alphabet, r))
	}

	assert.NotEqual(t, value, GenerateRandomString(32))
}

func TestGenerateNumericCode(t *testing.T) {
	code := GenerateNumericCode(6)
	assert.Len(t, code, 6)

	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9')
	}
}
