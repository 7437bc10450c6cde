package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/configs"
	token "github.com/awebcode/backend-travel-trippz/services/token"
	"github.com/awebcode/backend-travel-trippz/types"
)

// SessionStore and UserDirectory are the two collaborators the gateway
// blocks on per request.
type SessionStore interface {
	Select(sessionID, userID uuid.UUID) (types.Session, error)
}

type UserDirectory interface {
	SelectByID(id uuid.UUID) (types.User, error)
}

// Internal failure kinds. They reach the log, never the client: every one
// of them maps to the same generic 401 so error text cannot be used to
// enumerate accounts or sessions.
var (
	errMissingCredential = errors.New("no access token on either channel")
	errChannelMismatch   = errors.New("refresh token arrived on a different channel than the access token")
	errSessionNotFound   = errors.New("session revoked or missing")
	errSessionExpired    = errors.New("access token expired and no refresh token supplied")
	errUserGone          = errors.New("token subject no longer exists")
	errUserInactive      = errors.New("token subject is not active")
)

type tokenChannel string

const (
	channelHeaders tokenChannel = "headers"
	channelCookies tokenChannel = "cookies"
)

type credentials struct {
	channel      tokenChannel
	accessToken  string
	refreshToken string
}

// AuthMiddleware authenticates every request. Flow: pick one transport
// channel, verify the access token, validate the session, and resolve the
// principal fresh from the user directory. Expiry (and only expiry) of the
// access token diverts into the refresh path, which rotates a new token
// pair bound to the same session.
func AuthMiddleware(cfg configs.Config, codec *token.Codec, sessions SessionStore, users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. A bearer Authorization header means a misintegrated client;
		// refuse it outright rather than guessing.
		if c.GetHeader("Authorization") != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "unsupported_transport",
				"message": "The Authorization header is not supported. Send tokens via the " + configs.ACCESS_TOKEN_HEADER + " and " + configs.REFRESH_TOKEN_HEADER + " headers or cookies.",
			})
			c.Abort()
			return
		}

		// 2. Extract the token pair from exactly one channel.
		creds, err := extractCredentials(c)
		if err != nil {
			rejectUnauthorized(c, cfg, err)
			return
		}

		// 3. Verify the access token.
		claims, err := codec.Verify(creds.accessToken, types.PurposeAccess)
		if err == nil {
			authCtx, failure := resolvePrincipal(claims.SessionID, claims.UserID, sessions, users)
			if failure != nil {
				rejectUnauthorized(c, cfg, failure)
				return
			}
			SetAuthContext(c, authCtx)
			c.Next()
			return
		}

		// 4. Expiry is the only recoverable failure; everything else is
		// terminal for this request.
		if !errors.Is(err, token.ErrTokenExpired) {
			rejectUnauthorized(c, cfg, err)
			return
		}

		handleTokenRotation(c, cfg, codec, sessions, users, creds)
	}
}

// handleTokenRotation renews an expired access token through the refresh
// token. Rotation mints a fresh pair bound to the existing session id; it
// never creates a session.
func handleTokenRotation(c *gin.Context, cfg configs.Config, codec *token.Codec, sessions SessionStore, users UserDirectory, creds credentials) {
	// 1. No refresh token means the caller must log in again.
	if creds.refreshToken == "" {
		rejectUnauthorized(c, cfg, errSessionExpired)
		return
	}

	// 2. Verify the refresh token. Any failure here is terminal, expiry
	// included.
	claims, err := codec.Verify(creds.refreshToken, types.PurposeRefresh)
	if err != nil {
		rejectUnauthorized(c, cfg, err)
		return
	}

	// 3. The session must still be live and owned by the token's subject.
	authCtx, failure := resolvePrincipal(claims.SessionID, claims.UserID, sessions, users)
	if failure != nil {
		rejectUnauthorized(c, cfg, failure)
		return
	}

	// 4. Mint the new pair against the same session.
	newClaims := types.TokenClaims{
		UserID:      authCtx.UserID,
		Role:        authCtx.Role,
		Email:       authCtx.Email,
		DisplayName: authCtx.DisplayName,
		SessionID:   authCtx.SessionID,
	}

	newAccessToken, err := codec.Issue(newClaims, types.PurposeAccess)
	if err == nil {
		var newRefreshToken string
		newRefreshToken, err = codec.Issue(newClaims, types.PurposeRefresh)
		if err == nil {
			EmitTokenPair(c, cfg, creds.channel, newAccessToken, newRefreshToken)
		}
	}
	if err != nil {
		zap.L().Error("token rotation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while renewing the session.",
		})
		c.Abort()
		return
	}

	// 5. Attach the principal and continue.
	SetAuthContext(c, authCtx)
	c.Next()
}

// extractCredentials applies the channel rules: headers win when they
// carry a plausible access token, cookies otherwise, and the refresh
// token must ride the same channel as the access token.
func extractCredentials(c *gin.Context) (credentials, error) {
	headerAccess := strings.TrimSpace(c.GetHeader(configs.ACCESS_TOKEN_HEADER))
	headerRefresh := strings.TrimSpace(c.GetHeader(configs.REFRESH_TOKEN_HEADER))
	cookieAccess, _ := c.Cookie(configs.ACCESS_TOKEN_COOKIE)
	cookieRefresh, _ := c.Cookie(configs.REFRESH_TOKEN_COOKIE)

	if plausibleToken(headerAccess) {
		if headerRefresh == "" && cookieRefresh != "" {
			// A header-scoped attacker token must not be pairable with a
			// cookie-scoped victim refresh token.
			return credentials{}, errChannelMismatch
		}
		return credentials{channel: channelHeaders, accessToken: headerAccess, refreshToken: headerRefresh}, nil
	}

	if plausibleToken(cookieAccess) {
		if cookieRefresh == "" && headerRefresh != "" {
			return credentials{}, errChannelMismatch
		}
		return credentials{channel: channelCookies, accessToken: cookieAccess, refreshToken: cookieRefresh}, nil
	}

	return credentials{}, errMissingCredential
}

func plausibleToken(candidate string) bool {
	return candidate != "" && strings.Count(candidate, ".") == 2
}

// resolvePrincipal validates session liveness and re-reads the identity
// from the directory; the principal is never trusted from token claims
// alone.
func resolvePrincipal(sessionID, userID uuid.UUID, sessions SessionStore, users UserDirectory) (types.AuthContext, error) {
	session, err := sessions.Select(sessionID, userID)
	if err != nil {
		return types.AuthContext{}, errSessionNotFound
	}

	user, err := users.SelectByID(userID)
	if err != nil {
		return types.AuthContext{}, errUserGone
	}
	if user.Status != types.UserStatusActive {
		return types.AuthContext{}, errUserInactive
	}

	return types.AuthContext{
		UserID:      user.ID,
		Role:        user.Role,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		SessionID:   session.ID,
	}, nil
}

// EmitTokenPair returns a token pair to the caller on the given channel.
// Header clients read response headers; cookie clients get refreshed
// cookies when cookie mode is on.
func EmitTokenPair(c *gin.Context, cfg configs.Config, channel tokenChannel, accessToken, refreshToken string) {
	if channel == channelHeaders {
		c.Header(configs.ACCESS_TOKEN_HEADER, accessToken)
		c.Header(configs.REFRESH_TOKEN_HEADER, refreshToken)
		return
	}

	if !cfg.CookieMode {
		return
	}

	setSessionCookieMode(c, cfg)
	// The access cookie outlives its token on purpose: the expired token
	// must still reach the server to trigger the refresh path.
	c.SetCookie(configs.ACCESS_TOKEN_COOKIE, accessToken,
		int(configs.COOKIE_MAX_AGE.Seconds()), "/", cfg.CookieDomain, cfg.IsProduction(), true)
	c.SetCookie(configs.REFRESH_TOKEN_COOKIE, refreshToken,
		int(cfg.RefreshTokenDuration.Seconds()), "/", cfg.CookieDomain, cfg.IsProduction(), true)
}

// EmitLoginTokenPair serves the login/social-login handlers: fresh logins
// answer on both channels so either client kind can pick its transport.
func EmitLoginTokenPair(c *gin.Context, cfg configs.Config, accessToken, refreshToken string) {
	EmitTokenPair(c, cfg, channelHeaders, accessToken, refreshToken)
	EmitTokenPair(c, cfg, channelCookies, accessToken, refreshToken)
}

func ClearSessionCookies(c *gin.Context, cfg configs.Config) {
	setSessionCookieMode(c, cfg)
	c.SetCookie(configs.ACCESS_TOKEN_COOKIE, "", -1, "/", cfg.CookieDomain, cfg.IsProduction(), true)
	c.SetCookie(configs.REFRESH_TOKEN_COOKIE, "", -1, "/", cfg.CookieDomain, cfg.IsProduction(), true)
}

func setSessionCookieMode(c *gin.Context, cfg configs.Config) {
	if cfg.IsProduction() {
		c.SetSameSite(http.SameSiteStrictMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

// rejectUnauthorized converts every internal failure into one fixed
// outward response. The distinction is logged for operators only.
func rejectUnauthorized(c *gin.Context, cfg configs.Config, reason error) {
	zap.L().Info("request rejected by auth gateway",
		zap.String("reason", reason.Error()),
		zap.String("path", c.FullPath()),
		zap.String("ip", c.ClientIP()),
	)

	ClearSessionCookies(c, cfg)

	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
		"message": "Invalid or expired credentials. Please log in again.",
	})
	c.Abort()
}
