package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once in main and injected into the token codec, the
// middlewares and the handlers. Nothing below this layer reads the
// environment directly.
type Config struct {
	Environment string
	Port        string
	DatabaseURL string

	// One signing secret per token purpose. A leaked token of one purpose
	// must never verify as another.
	AccessTokenSecret  string
	RefreshTokenSecret string
	ResetTokenSecret   string
	EmailVerifySecret  string
	PhoneVerifySecret  string

	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	ResetTokenDuration   time.Duration
	VerifyTokenDuration  time.Duration

	// CookieMode controls whether rotated token pairs are re-emitted as
	// response cookies when the request arrived on the cookie channel.
	CookieMode   bool
	CookieDomain string

	GoogleClientID    string
	FacebookAppID     string
	FacebookAppSecret string
	AppleClientID     string

	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2Endpoint        string
	R2PublicURLBase   string
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads .env (if present) and the environment into an immutable Config.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	cfg := Config{
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AccessTokenSecret:  os.Getenv("JWT_ACCESS_SECRET"),
		RefreshTokenSecret: os.Getenv("JWT_REFRESH_SECRET"),
		ResetTokenSecret:   os.Getenv("JWT_RESET_SECRET"),
		EmailVerifySecret:  os.Getenv("JWT_EMAIL_VERIFY_SECRET"),
		PhoneVerifySecret:  os.Getenv("JWT_PHONE_VERIFY_SECRET"),

		AccessTokenDuration:  getDuration("ACCESS_TOKEN_DURATION", ACCESS_TOKEN_DURATION),
		RefreshTokenDuration: getDuration("REFRESH_TOKEN_DURATION", REFRESH_TOKEN_DURATION),
		ResetTokenDuration:   getDuration("RESET_TOKEN_DURATION", RESET_TOKEN_DURATION),
		VerifyTokenDuration:  getDuration("VERIFY_TOKEN_DURATION", VERIFY_TOKEN_DURATION),

		CookieMode:   getBool("COOKIE_MODE", true),
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		GoogleClientID:    os.Getenv("GOOGLE_CLIENT_ID"),
		FacebookAppID:     os.Getenv("FACEBOOK_APP_ID"),
		FacebookAppSecret: os.Getenv("FACEBOOK_APP_SECRET"),
		AppleClientID:     os.Getenv("APPLE_CLIENT_ID"),

		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2AccessKeySecret: os.Getenv("R2_ACCESS_KEY_SECRET"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2Endpoint:        os.Getenv("R2_ENDPOINT"),
		R2PublicURLBase:   os.Getenv("R2_PUBLIC_URL_BASE"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	secrets := map[string]string{
		"JWT_ACCESS_SECRET":       cfg.AccessTokenSecret,
		"JWT_REFRESH_SECRET":      cfg.RefreshTokenSecret,
		"JWT_RESET_SECRET":        cfg.ResetTokenSecret,
		"JWT_EMAIL_VERIFY_SECRET": cfg.EmailVerifySecret,
		"JWT_PHONE_VERIFY_SECRET": cfg.PhoneVerifySecret,
	}
	for name, value := range secrets {
		if strings.TrimSpace(value) == "" {
			return Config{}, fmt.Errorf("%s is required", name)
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
