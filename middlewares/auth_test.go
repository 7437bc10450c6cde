package middlewares

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awebcode/backend-travel-trippz/configs"
	token "github.com/awebcode/backend-travel-trippz/services/token"
	"github.com/awebcode/backend-travel-trippz/types"
)

const genericAuthMessage = "Invalid or expired credentials. Please log in again."

type fakeSessionStore struct {
	sessions map[uuid.UUID]types.Session
}

func (f *fakeSessionStore) Select(sessionID, userID uuid.UUID) (types.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok || session.UserID != userID || session.RevokedAt != nil {
		return types.Session{}, sql.ErrNoRows
	}
	return session, nil
}

type fakeUserDirectory struct {
	users map[uuid.UUID]types.User
}

func (f *fakeUserDirectory) SelectByID(id uuid.UUID) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, sql.ErrNoRows
	}
	return user, nil
}

type authFixture struct {
	cfg      configs.Config
	codec    *token.Codec
	sessions *fakeSessionStore
	users    *fakeUserDirectory
	router   *gin.Engine

	user    types.User
	session types.Session
	claims  types.TokenClaims
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := configs.Config{
		Environment: "development",
		CookieMode:  true,

		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "refresh-secret-for-tests",
		ResetTokenSecret:   "reset-secret-for-tests",
		EmailVerifySecret:  "email-secret-for-tests",
		PhoneVerifySecret:  "phone-secret-for-tests",

		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 90 * 24 * time.Hour,
		ResetTokenDuration:   15 * time.Minute,
		VerifyTokenDuration:  24 * time.Hour,
	}

	user := types.User{
		ID:          uuid.New(),
		Email:       "traveler@example.com",
		DisplayName: "Traveler",
		Role:        types.RoleUser,
		Status:      types.UserStatusActive,
	}
	session := types.Session{ID: uuid.New(), UserID: user.ID}

	fixture := &authFixture{
		cfg:      cfg,
		codec:    token.NewCodec(cfg),
		sessions: &fakeSessionStore{sessions: map[uuid.UUID]types.Session{session.ID: session}},
		users:    &fakeUserDirectory{users: map[uuid.UUID]types.User{user.ID: user}},
		user:     user,
		session:  session,
		claims: types.TokenClaims{
			UserID:      user.ID,
			Role:        user.Role,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			SessionID:   session.ID,
		},
	}

	router := gin.New()
	router.Use(AuthMiddleware(fixture.cfg, fixture.codec, fixture.sessions, fixture.users))
	router.GET("/protected", func(c *gin.Context) {
		authCtx, ok := GetAuthContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": authCtx.UserID, "sessionId": authCtx.SessionID})
	})
	fixture.router = router

	return fixture
}

// issueExpired mints a token that is already expired but signed with the
// live secrets.
func (f *authFixture) issueExpired(t *testing.T, purpose types.TokenPurpose) string {
	t.Helper()

	expiredCfg := f.cfg
	expiredCfg.AccessTokenDuration = -time.Minute
	expiredCfg.RefreshTokenDuration = -time.Minute

	signed, err := token.NewCodec(expiredCfg).Issue(f.claims, purpose)
	require.NoError(t, err)
	return signed
}

func (f *authFixture) issue(t *testing.T, purpose types.TokenPurpose) string {
	t.Helper()
	signed, err := f.codec.Issue(f.claims, purpose)
	require.NoError(t, err)
	return signed
}

func (f *authFixture) do(req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	f.router.ServeHTTP(recorder, req)
	return recorder
}

func assertGenericUnauthorized(t *testing.T, recorder *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "unauthorized", body["error"])
	assert.Equal(t, genericAuthMessage, body["message"])
}

func TestValidAccessTokenOnHeaders(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issue(t, types.PurposeAccess))

	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	// No rotation happened, so no new pair is emitted.
	assert.Empty(t, recorder.Header().Get(configs.ACCESS_TOKEN_HEADER))
	assert.Empty(t, recorder.Header().Get(configs.REFRESH_TOKEN_HEADER))
}

func TestValidAccessTokenOnCookies(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_COOKIE, Value: f.issue(t, types.PurposeAccess)})

	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestMissingCredentials(t *testing.T) {
	f := newAuthFixture(t)

	recorder := f.do(httptest.NewRequest(http.MethodGet, "/protected", nil))

	assertGenericUnauthorized(t, recorder)
}

func TestAuthorizationHeaderRejected(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+f.issue(t, types.PurposeAccess))

	recorder := f.do(req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "unsupported_transport", body["error"])
}

func TestRotationOnHeaders(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))
	req.Header.Set(configs.REFRESH_TOKEN_HEADER, f.issue(t, types.PurposeRefresh))

	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	// The fresh pair rides the response headers, not cookies.
	newAccess := recorder.Header().Get(configs.ACCESS_TOKEN_HEADER)
	newRefresh := recorder.Header().Get(configs.REFRESH_TOKEN_HEADER)
	require.NotEmpty(t, newAccess)
	require.NotEmpty(t, newRefresh)
	assert.Empty(t, recorder.Result().Cookies())

	// The new pair stays bound to the original session.
	claims, err := f.codec.Verify(newAccess, types.PurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, f.session.ID, claims.SessionID)
	assert.Equal(t, f.user.ID, claims.UserID)

	claims, err = f.codec.Verify(newRefresh, types.PurposeRefresh)
	require.NoError(t, err)
	assert.Equal(t, f.session.ID, claims.SessionID)
}

func TestRotationOnCookies(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_COOKIE, Value: f.issueExpired(t, types.PurposeAccess)})
	req.AddCookie(&http.Cookie{Name: configs.REFRESH_TOKEN_COOKIE, Value: f.issue(t, types.PurposeRefresh)})

	recorder := f.do(req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Header().Get(configs.ACCESS_TOKEN_HEADER))

	var gotAccess, gotRefresh bool
	for _, cookie := range recorder.Result().Cookies() {
		switch cookie.Name {
		case configs.ACCESS_TOKEN_COOKIE:
			gotAccess = true
			assert.True(t, cookie.HttpOnly)
			claims, err := f.codec.Verify(cookie.Value, types.PurposeAccess)
			require.NoError(t, err)
			assert.Equal(t, f.session.ID, claims.SessionID)
		case configs.REFRESH_TOKEN_COOKIE:
			gotRefresh = true
		}
	}
	assert.True(t, gotAccess)
	assert.True(t, gotRefresh)
}

func TestRotationWithoutRefreshToken(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestChannelMismatchRejected(t *testing.T) {
	f := newAuthFixture(t)

	// Access token on headers, refresh token only on cookies: the pair
	// must not be stitched together across channels.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))
	req.AddCookie(&http.Cookie{Name: configs.REFRESH_TOKEN_COOKIE, Value: f.issue(t, types.PurposeRefresh)})

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestChannelMismatchCookieAccessHeaderRefresh(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_COOKIE, Value: f.issueExpired(t, types.PurposeAccess)})
	req.Header.Set(configs.REFRESH_TOKEN_HEADER, f.issue(t, types.PurposeRefresh))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestExpiredRefreshTokenIsTerminal(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))
	req.Header.Set(configs.REFRESH_TOKEN_HEADER, f.issueExpired(t, types.PurposeRefresh))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestWrongPurposeAccessTokenIsTerminal(t *testing.T) {
	f := newAuthFixture(t)

	// A refresh token presented as the access token is malformed, not
	// expired, so the refresh path must not run even with a valid refresh
	// token alongside.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issue(t, types.PurposeRefresh))
	req.Header.Set(configs.REFRESH_TOKEN_HEADER, f.issue(t, types.PurposeRefresh))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
	assert.Empty(t, recorder.Header().Get(configs.ACCESS_TOKEN_HEADER))
}

func TestRevokedSessionRejected(t *testing.T) {
	f := newAuthFixture(t)

	revokedAt := time.Now()
	session := f.session
	session.RevokedAt = &revokedAt
	f.sessions.sessions[session.ID] = session

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issue(t, types.PurposeAccess))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestRevokedSessionBlocksRotation(t *testing.T) {
	f := newAuthFixture(t)

	revokedAt := time.Now()
	session := f.session
	session.RevokedAt = &revokedAt
	f.sessions.sessions[session.ID] = session

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))
	req.Header.Set(configs.REFRESH_TOKEN_HEADER, f.issue(t, types.PurposeRefresh))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
	assert.Empty(t, recorder.Header().Get(configs.ACCESS_TOKEN_HEADER))
}

func TestDeletedUserRejected(t *testing.T) {
	f := newAuthFixture(t)

	delete(f.users.users, f.user.ID)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issue(t, types.PurposeAccess))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestSuspendedUserRejected(t *testing.T) {
	f := newAuthFixture(t)

	user := f.user
	user.Status = types.UserStatusSuspended
	f.users.users[user.ID] = user

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issue(t, types.PurposeAccess))

	recorder := f.do(req)

	assertGenericUnauthorized(t, recorder)
}

func TestPrincipalReadFreshFromDirectory(t *testing.T) {
	f := newAuthFixture(t)

	// The role changed after the token was signed; the gateway must serve
	// the directory's current view, not the claim.
	signed := f.issue(t, types.PurposeAccess)
	user := f.user
	user.Role = types.RoleAdmin
	f.users.users[user.ID] = user

	router := gin.New()
	router.Use(AuthMiddleware(f.cfg, f.codec, f.sessions, f.users))
	router.GET("/role", func(c *gin.Context) {
		authCtx, _ := GetAuthContext(c)
		c.JSON(http.StatusOK, gin.H{"role": authCtx.Role})
	})

	req := httptest.NewRequest(http.MethodGet, "/role", nil)
	req.Header.Set(configs.ACCESS_TOKEN_HEADER, signed)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, string(types.RoleAdmin), body["role"])
}

func TestRefreshTokenReusableUntilExpiry(t *testing.T) {
	f := newAuthFixture(t)

	refreshToken := f.issue(t, types.PurposeRefresh)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(configs.ACCESS_TOKEN_HEADER, f.issueExpired(t, types.PurposeAccess))
		req.Header.Set(configs.REFRESH_TOKEN_HEADER, refreshToken)

		recorder := f.do(req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get(configs.ACCESS_TOKEN_HEADER))
	}
}

func TestUnauthorizedClearsSessionCookies(t *testing.T) {
	f := newAuthFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: configs.ACCESS_TOKEN_COOKIE, Value: "not.a.token"})

	recorder := f.do(req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var cleared int
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == configs.ACCESS_TOKEN_COOKIE || cookie.Name == configs.REFRESH_TOKEN_COOKIE {
			assert.Less(t, cookie.MaxAge, 0)
			cleared++
		}
	}
	assert.Equal(t, 2, cleared)
}
