package types

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus - user status enum type
type UserStatus string

const (
	UserStatusActive    UserStatus = "Active"
	UserStatusSuspended UserStatus = "Suspended"
	UserStatusDeleted   UserStatus = "Deleted"
)

// Role - user role enum type
type Role string

const (
	RoleUser            Role = "User"
	RoleServiceProvider Role = "ServiceProvider"
	RoleAdmin           Role = "Admin"
)

// Table Model (database/migrations/00001.auth.up.sql)
type User struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Email          string     `db:"email" json:"email"`
	PhoneNumber    string     `db:"phone_number" json:"phoneNumber"`
	DisplayName    string     `db:"display_name" json:"displayName"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	Role           Role       `db:"role" json:"role"`
	SocialProvider string     `db:"social_provider" json:"socialProvider,omitempty"`
	EmailVerified  bool       `db:"email_verified" json:"emailVerified"`
	PhoneVerified  bool       `db:"phone_verified" json:"phoneVerified"`
	Status         UserStatus `db:"status" json:"status"`
	DeletedAt      *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	LastLogin      time.Time  `db:"last_login" json:"lastLogin"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// UserProfileResponse - secure model to return user profile
type UserProfileResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phoneNumber"`
	DisplayName   string     `json:"displayName"`
	Role          Role       `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	PhoneVerified bool       `json:"phoneVerified"`
	Status        UserStatus `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLogin     time.Time  `json:"lastLogin"`
}

func (u User) Profile() UserProfileResponse {
	return UserProfileResponse{
		ID:            u.ID,
		Email:         u.Email,
		PhoneNumber:   u.PhoneNumber,
		DisplayName:   u.DisplayName,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		Status:        u.Status,
		CreatedAt:     u.CreatedAt,
		LastLogin:     u.LastLogin,
	}
}

// UserCreateRequest - user registration request
type UserCreateRequest struct {
	DisplayName string `json:"displayName" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,min=7,max=20"`
	Password    string `json:"password" binding:"required,min=8"`
}

// UserLoginRequest - login with email or phone number
type UserLoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SocialLoginRequest - login with a provider-asserted token
type SocialLoginRequest struct {
	Provider string `json:"provider" binding:"required,oneof=google facebook apple"`
	Token    string `json:"token" binding:"required"`
}

// ForgotPasswordRequest starts the password reset flow.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest completes the password reset flow.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// VerifyEmailRequest confirms the address with a mailed token.
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// VerifyPhoneRequest confirms the number with a texted code.
type VerifyPhoneRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}
