package social

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

const (
	appleIssuer  = "https://appleid.apple.com"
	appleKeysURL = "https://appleid.apple.com/auth/keys"
)

type appleClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// verifyApple validates the identity token locally against Apple's
// published signing keys; Apple has no tokeninfo-style endpoint.
func (v *HTTPVerifier) verifyApple(ctx context.Context, idToken string) (Identity, error) {
	keys, err := v.fetchAppleKeys(ctx)
	if err != nil {
		return Identity{}, err
	}

	parsed, err := jwt.ParseWithClaims(idToken, &appleClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, ErrInvalidToken
		}
		kid, _ := t.Header["kid"].(string)
		key, ok := keys[kid]
		if !ok {
			return nil, ErrInvalidToken
		}
		return key, nil
	}, jwt.WithIssuer(appleIssuer))
	if err != nil {
		return Identity{}, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*appleClaims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	if v.cfg.AppleClientID != "" {
		audOk := false
		for _, aud := range claims.Audience {
			if aud == v.cfg.AppleClientID {
				audOk = true
				break
			}
		}
		if !audOk {
			return Identity{}, ErrInvalidToken
		}
	}

	if claims.Email == "" {
		return Identity{}, ErrMissingEmailClaim
	}

	// Apple only shares the name on the very first authorization, through
	// a separate payload the client may not forward; leave it empty here.
	return Identity{
		Provider: "apple",
		Subject:  claims.Subject,
		Email:    claims.Email,
	}, nil
}

type appleJWKS struct {
	Keys []struct {
		Kty string `json:"kty"`
		Kid string `json:"kid"`
		N   string `json:"n"`
		E   string `json:"e"`
	} `json:"keys"`
}

func (v *HTTPVerifier) fetchAppleKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, appleKeysURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build apple keys request: %w", err)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apple keys request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read apple keys: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apple keys endpoint returned %d", resp.StatusCode)
	}

	var jwks appleJWKS
	if err := json.Unmarshal(body, &jwks); err != nil {
		return nil, fmt.Errorf("decode apple keys: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(jwks.Keys))
	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		n, err := base64.RawURLEncoding.DecodeString(key.N)
		if err != nil {
			continue
		}
		e, err := base64.RawURLEncoding.DecodeString(key.E)
		if err != nil {
			continue
		}
		keys[key.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(n),
			E: int(new(big.Int).SetBytes(e).Int64()),
		}
	}

	return keys, nil
}
