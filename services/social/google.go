package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

type googleTokenInfo struct {
	Audience    string `json:"aud"`
	Subject     string `json:"sub"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	ExpiresUnix string `json:"exp"`
}

// verifyGoogle validates the ID token against Google's tokeninfo endpoint,
// which performs the signature and expiry checks server-side.
func (v *HTTPVerifier) verifyGoogle(ctx context.Context, idToken string) (Identity, error) {
	endpoint := googleTokenInfoURL + "?id_token=" + url.QueryEscape(idToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build tokeninfo request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("tokeninfo request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, fmt.Errorf("read tokeninfo response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Identity{}, ErrInvalidToken
	}

	var info googleTokenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return Identity{}, fmt.Errorf("decode tokeninfo response: %w", err)
	}

	if v.cfg.GoogleClientID != "" && info.Audience != v.cfg.GoogleClientID {
		return Identity{}, ErrInvalidToken
	}
	if info.Email == "" {
		return Identity{}, ErrMissingEmailClaim
	}

	return Identity{
		Provider:    "google",
		Subject:     info.Subject,
		Email:       info.Email,
		DisplayName: info.Name,
	}, nil
}
