package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/types"
)

var (
	// ErrTokenExpired is the only recoverable verification failure: an
	// expired access token may still be renewed through the refresh path.
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenMalformed  = errors.New("token malformed")
	ErrPurposeMismatch = errors.New("token purpose mismatch")
	ErrUnknownPurpose  = errors.New("unknown token purpose")
)

type purposePolicy struct {
	secret []byte
	ttl    time.Duration
}

// Codec signs and verifies the five purpose-scoped token kinds. Each
// purpose has its own secret and lifetime; both come from the process
// config, never from ambient state.
type Codec struct {
	issuer   string
	policies map[types.TokenPurpose]purposePolicy
}

func NewCodec(cfg configs.Config) *Codec {
	return &Codec{
		issuer: configs.JWT_ISSUER,
		policies: map[types.TokenPurpose]purposePolicy{
			types.PurposeAccess:        {[]byte(cfg.AccessTokenSecret), cfg.AccessTokenDuration},
			types.PurposeRefresh:       {[]byte(cfg.RefreshTokenSecret), cfg.RefreshTokenDuration},
			types.PurposePasswordReset: {[]byte(cfg.ResetTokenSecret), cfg.ResetTokenDuration},
			types.PurposeEmailVerify:   {[]byte(cfg.EmailVerifySecret), cfg.VerifyTokenDuration},
			types.PurposePhoneVerify:   {[]byte(cfg.PhoneVerifySecret), cfg.VerifyTokenDuration},
		},
	}
}

type signedClaims struct {
	jwt.RegisteredClaims
	Purpose     types.TokenPurpose `json:"purpose"`
	Role        types.Role         `json:"role"`
	Email       string             `json:"email"`
	DisplayName string             `json:"displayName"`
	SessionID   string             `json:"sessionId,omitempty"`
}

// Issue signs claims for the given purpose with that purpose's secret and
// lifetime. No side effects.
func (c *Codec) Issue(claims types.TokenClaims, purpose types.TokenPurpose) (string, error) {
	policy, ok := c.policies[purpose]
	if !ok {
		return "", ErrUnknownPurpose
	}

	now := time.Now()
	signed := signedClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(policy.ttl)),
		},
		Purpose:     purpose,
		Role:        claims.Role,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
	}
	if claims.SessionID != uuid.Nil {
		signed.SessionID = claims.SessionID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, signed).SignedString(policy.secret)
}

// Verify checks the signature, then expiry, then purpose equality. The
// purpose claim must equal the expected purpose even when the signature
// verifies; this guards against two purposes being configured with the
// same secret.
func (c *Codec) Verify(tokenString string, expected types.TokenPurpose) (types.TokenClaims, error) {
	policy, ok := c.policies[expected]
	if !ok {
		return types.TokenClaims{}, ErrUnknownPurpose
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &signedClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenMalformed
		}
		return policy.secret, nil
	}, jwt.WithIssuer(c.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return types.TokenClaims{}, ErrTokenExpired
		}
		return types.TokenClaims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	signed, ok := parsed.Claims.(*signedClaims)
	if !ok || !parsed.Valid {
		return types.TokenClaims{}, ErrTokenMalformed
	}

	if signed.Purpose != expected {
		return types.TokenClaims{}, ErrPurposeMismatch
	}

	userID, err := uuid.Parse(signed.Subject)
	if err != nil {
		return types.TokenClaims{}, ErrTokenMalformed
	}

	claims := types.TokenClaims{
		UserID:      userID,
		Role:        signed.Role,
		Email:       signed.Email,
		DisplayName: signed.DisplayName,
	}
	if signed.SessionID != "" {
		sessionID, err := uuid.Parse(signed.SessionID)
		if err != nil {
			return types.TokenClaims{}, ErrTokenMalformed
		}
		claims.SessionID = sessionID
	}

	return claims, nil
}

// TTL reports the configured lifetime for a purpose, used for cookie
// max-age on emission.
func (c *Codec) TTL(purpose types.TokenPurpose) time.Duration {
	return c.policies[purpose].ttl
}
