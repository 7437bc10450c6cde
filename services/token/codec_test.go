package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/types"
)

func testConfig() configs.Config {
	return configs.Config{
		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "refresh-secret-for-tests",
		ResetTokenSecret:   "reset-secret-for-tests",
		EmailVerifySecret:  "email-secret-for-tests",
		PhoneVerifySecret:  "phone-secret-for-tests",

		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 90 * 24 * time.Hour,
		ResetTokenDuration:   15 * time.Minute,
		VerifyTokenDuration:  24 * time.Hour,
	}
}

func testClaims() types.TokenClaims {
	return types.TokenClaims{
		UserID:      uuid.New(),
		Role:        types.RoleUser,
		Email:       "traveler@example.com",
		DisplayName: "Traveler",
		SessionID:   uuid.New(),
	}
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	codec := NewCodec(testConfig())
	claims := testClaims()

	purposes := []types.TokenPurpose{
		types.PurposeAccess,
		types.PurposeRefresh,
		types.PurposePasswordReset,
		types.PurposeEmailVerify,
		types.PurposePhoneVerify,
	}

	for _, purpose := range purposes {
		signed, err := codec.Issue(claims, purpose)
		require.NoError(t, err, purpose)
		require.NotEmpty(t, signed)

		verified, err := codec.Verify(signed, purpose)
		require.NoError(t, err, purpose)

		assert.Equal(t, claims.UserID, verified.UserID)
		assert.Equal(t, claims.Role, verified.Role)
		assert.Equal(t, claims.Email, verified.Email)
		assert.Equal(t, claims.DisplayName, verified.DisplayName)
		assert.Equal(t, claims.SessionID, verified.SessionID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenDuration = -time.Minute
	codec := NewCodec(cfg)

	signed, err := codec.Issue(testClaims(), types.PurposeAccess)
	require.NoError(t, err)

	_, err = codec.Verify(signed, types.PurposeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyPurposeMismatchWithSharedSecret(t *testing.T) {
	// Even when two purposes are misconfigured with the same secret, the
	// purpose claim keeps their tokens apart.
	cfg := testConfig()
	cfg.RefreshTokenSecret = cfg.AccessTokenSecret
	codec := NewCodec(cfg)

	signed, err := codec.Issue(testClaims(), types.PurposeRefresh)
	require.NoError(t, err)

	_, err = codec.Verify(signed, types.PurposeAccess)
	assert.ErrorIs(t, err, ErrPurposeMismatch)
}

func TestVerifyCrossPurposeSecretIsolation(t *testing.T) {
	codec := NewCodec(testConfig())

	signed, err := codec.Issue(testClaims(), types.PurposeAccess)
	require.NoError(t, err)

	_, err = codec.Verify(signed, types.PurposeRefresh)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyGarbageToken(t *testing.T) {
	codec := NewCodec(testConfig())

	_, err := codec.Verify("not.a.token", types.PurposeAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestVerifyTamperedToken(t *testing.T) {
	codec := NewCodec(testConfig())

	signed, err := codec.Issue(testClaims(), types.PurposeAccess)
	require.NoError(t, err)

	tampered := signed + "x"
	_, err = codec.Verify(tampered, types.PurposeAccess)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestIssueUnknownPurpose(t *testing.T) {
	codec := NewCodec(testConfig())

	_, err := codec.Issue(testClaims(), types.TokenPurpose("banana"))
	assert.ErrorIs(t, err, ErrUnknownPurpose)
}

func TestTTLPerPurpose(t *testing.T) {
	cfg := testConfig()
	codec := NewCodec(cfg)

	assert.Equal(t, cfg.AccessTokenDuration, codec.TTL(types.PurposeAccess))
	assert.Equal(t, cfg.RefreshTokenDuration, codec.TTL(types.PurposeRefresh))
	assert.Equal(t, cfg.VerifyTokenDuration, codec.TTL(types.PurposeEmailVerify))
}
