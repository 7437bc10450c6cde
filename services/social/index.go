package social

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/awebcode/backend-travel-trippz/configs"
)

var (
	// ErrMissingEmailClaim means the provider verified the token but the
	// identity carries no email (users can suppress it on some providers).
	ErrMissingEmailClaim = errors.New("provider asserted no email claim")
	ErrInvalidToken      = errors.New("provider rejected the token")
	ErrUnknownProvider   = errors.New("unknown social provider")
)

// Identity is what a provider asserts about the caller after its token
// checks out.
type Identity struct {
	Provider    string
	Subject     string
	Email       string
	DisplayName string
}

// Verifier confirms a third-party-asserted token out-of-band with the
// provider before we trust its identity claims.
type Verifier interface {
	Verify(ctx context.Context, provider, token string) (Identity, error)
}

// HTTPVerifier checks tokens against the live provider endpoints.
type HTTPVerifier struct {
	client *http.Client
	cfg    configs.Config
}

func NewHTTPVerifier(cfg configs.Config, client *http.Client) *HTTPVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	return &HTTPVerifier{client: client, cfg: cfg}
}

func (v *HTTPVerifier) Verify(ctx context.Context, provider, token string) (Identity, error) {
	switch provider {
	case "google":
		return v.verifyGoogle(ctx, token)
	case "facebook":
		return v.verifyFacebook(ctx, token)
	case "apple":
		return v.verifyApple(ctx, token)
	default:
		return Identity{}, ErrUnknownProvider
	}
}
