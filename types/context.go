package types

import (
	"github.com/google/uuid"
)

// AuthContext is the resolved principal attached to a request after the
// auth middleware succeeds. It is stored once under a single context key
// instead of scattering loose values on the gin context, and is immutable
// for the request's lifetime.
type AuthContext struct {
	UserID      uuid.UUID
	Role        Role
	Email       string
	DisplayName string
	SessionID   uuid.UUID
}

// ValidatedQuery carries cross-cutting query values the permission
// middleware injects with defaults before the handler runs.
type ValidatedQuery struct {
	Page  int
	Limit int
}

func (q ValidatedQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
