package social

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const facebookGraphURL = "https://graph.facebook.com/v19.0/me"

type facebookProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// verifyFacebook resolves the access token through the Graph API. A token
// that does not belong to a real login fails there; the email field stays
// empty when the user denied the email permission.
func (v *HTTPVerifier) verifyFacebook(ctx context.Context, accessToken string) (Identity, error) {
	query := url.Values{}
	query.Set("fields", "id,name,email")
	query.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, facebookGraphURL+"?"+query.Encode(), nil)
	if err != nil {
		return Identity{}, fmt.Errorf("build graph request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("graph request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, fmt.Errorf("read graph response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Identity{}, ErrInvalidToken
	}

	var profile facebookProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return Identity{}, fmt.Errorf("decode graph response: %w", err)
	}

	if profile.ID == "" {
		return Identity{}, ErrInvalidToken
	}
	if profile.Email == "" {
		return Identity{}, ErrMissingEmailClaim
	}

	return Identity{
		Provider:    "facebook",
		Subject:     profile.ID,
		Email:       profile.Email,
		DisplayName: profile.Name,
	}, nil
}
