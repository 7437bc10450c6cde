package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/types"
)

func permissionRouter(seed *types.AuthContext, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if seed != nil {
			SetAuthContext(c, *seed)
		}
		c.Next()
	})
	router.GET("/guarded", guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func performGet(router *gin.Engine, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestRestrictToFailsClosedWithoutPrincipal(t *testing.T) {
	router := permissionRouter(nil, RestrictTo(types.RoleUser))

	recorder := performGet(router, "/guarded")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRestrictToAllowsListedRole(t *testing.T) {
	authCtx := &types.AuthContext{Role: types.RoleServiceProvider}
	router := permissionRouter(authCtx, RestrictTo(types.RoleServiceProvider, types.RoleAdmin))

	recorder := performGet(router, "/guarded")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRestrictToForbidsUnlistedRole(t *testing.T) {
	authCtx := &types.AuthContext{Role: types.RoleUser}
	router := permissionRouter(authCtx, RestrictTo(types.RoleAdmin))

	recorder := performGet(router, "/guarded")

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequirePermissionByRoleMap(t *testing.T) {
	provider := &types.AuthContext{Role: types.RoleServiceProvider}
	router := permissionRouter(provider, RequirePermission(configs.PermissionManageHotels))
	assert.Equal(t, http.StatusOK, performGet(router, "/guarded").Code)

	user := &types.AuthContext{Role: types.RoleUser}
	router = permissionRouter(user, RequirePermission(configs.PermissionManageHotels))
	assert.Equal(t, http.StatusForbidden, performGet(router, "/guarded").Code)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(types.RoleAdmin, configs.PermissionManageUsers))
	assert.True(t, HasPermission(types.RoleServiceProvider, configs.PermissionUploadMedia))
	assert.False(t, HasPermission(types.RoleUser, configs.PermissionManageHotels))
	assert.False(t, HasPermission(types.Role("Unknown"), configs.PermissionManageHotels))
}

func TestPaginationFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/list", ValidateQuery(), func(c *gin.Context) {
		query := GetValidatedQuery(c)
		c.JSON(http.StatusOK, gin.H{"page": query.Page, "limit": query.Limit, "offset": query.Offset()})
	})

	cases := []struct {
		name   string
		target string
		page   int
		limit  int
	}{
		{"defaults", "/list", configs.DEFAULT_PAGE, configs.DEFAULT_LIMIT},
		{"explicit", "/list?page=3&limit=25", 3, 25},
		{"limit capped", "/list?limit=9999", configs.DEFAULT_PAGE, configs.MAX_LIMIT},
		{"garbage ignored", "/list?page=zero&limit=-5", configs.DEFAULT_PAGE, configs.DEFAULT_LIMIT},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := performGet(router, tc.target)
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"page":`+strconv.Itoa(tc.page))
			assert.Contains(t, recorder.Body.String(), `"limit":`+strconv.Itoa(tc.limit))
		})
	}
}
