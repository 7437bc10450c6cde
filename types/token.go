package types

import (
	"time"

	"github.com/google/uuid"
)

// TokenPurpose is the single intended use of a signed token. Each purpose
// signs with its own secret and is checked on verification, so a leaked
// token of one purpose cannot be replayed as another.
type TokenPurpose string

const (
	PurposeAccess        TokenPurpose = "access"
	PurposeRefresh       TokenPurpose = "refresh"
	PurposePasswordReset TokenPurpose = "password-reset"
	PurposeEmailVerify   TokenPurpose = "email-verify"
	PurposePhoneVerify   TokenPurpose = "phone-verify"
)

// Information to be carried in JWT
type TokenClaims struct {
	UserID      uuid.UUID `json:"userId"`
	Role        Role      `json:"role"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	SessionID   uuid.UUID `json:"sessionId"`
}

// Table Model (database/migrations/00001.auth.up.sql)
//
// A session is one login instance. It is the server-side source of truth
// for liveness: a revoked or missing session rejects every token bound to
// it regardless of the token's own expiry.
type Session struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    uuid.UUID  `db:"user_id" json:"userId"`
	IPAddress string     `db:"ip_address" json:"ipAddress"`
	UserAgent string     `db:"user_agent" json:"userAgent"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	RevokedAt *time.Time `db:"revoked_at" json:"revokedAt,omitempty"`
}

// SessionCreateRequest carries the request metadata recorded on login.
type SessionCreateRequest struct {
	UserID    uuid.UUID
	IPAddress string
	UserAgent string
}

// Table Model (database/migrations/00001.auth.up.sql)
//
// One live record per user per purpose; consumed exactly once.
type VerificationToken struct {
	UserID    uuid.UUID    `db:"user_id" json:"userId"`
	Purpose   TokenPurpose `db:"purpose" json:"purpose"`
	Token     string       `db:"token" json:"-"`
	ExpiresAt time.Time    `db:"expires_at" json:"expiresAt"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}
