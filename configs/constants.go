package configs

import (
	"time"
)

const (
	// Project Rules
	PROJECT_NAME = "Trippz - Travel Booking"

	// Session Rules
	ACCESS_TOKEN_HEADER  = "X-Access-Token"
	REFRESH_TOKEN_HEADER = "X-Refresh-Token"
	ACCESS_TOKEN_COOKIE  = "accessToken"
	REFRESH_TOKEN_COOKIE = "refreshToken"

	ACCESS_TOKEN_DURATION  = 15 * time.Minute
	REFRESH_TOKEN_DURATION = 90 * 24 * time.Hour
	RESET_TOKEN_DURATION   = 15 * time.Minute
	VERIFY_TOKEN_DURATION  = 24 * time.Hour
	COOKIE_MAX_AGE         = 30 * 24 * time.Hour
	JWT_ISSUER             = "trippz-api"

	// Verification Rules
	PHONE_CODE_LENGTH = 6

	// Pagination Rules
	DEFAULT_PAGE  = 1
	DEFAULT_LIMIT = 10
	MAX_LIMIT     = 100

	// Rate Limit Rules
	LOGIN_RATE_LIMIT  = 10
	LOGIN_RATE_WINDOW = 1 * time.Minute
)
