package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/types"
)

// One typed value per concern instead of loose keys scattered over the
// gin context.
const (
	authContextKey    = "authContext"
	validatedQueryKey = "validatedQuery"
)

func SetAuthContext(c *gin.Context, authCtx types.AuthContext) {
	c.Set(authContextKey, authCtx)
}

func GetAuthContext(c *gin.Context) (types.AuthContext, bool) {
	value, ok := c.Get(authContextKey)
	if !ok {
		return types.AuthContext{}, false
	}

	authCtx, ok := value.(types.AuthContext)
	return authCtx, ok
}

func SetValidatedQuery(c *gin.Context, query types.ValidatedQuery) {
	c.Set(validatedQueryKey, query)
}

func GetValidatedQuery(c *gin.Context) types.ValidatedQuery {
	value, ok := c.Get(validatedQueryKey)
	if !ok {
		return types.ValidatedQuery{Page: configs.DEFAULT_PAGE, Limit: configs.DEFAULT_LIMIT}
	}

	query, ok := value.(types.ValidatedQuery)
	if !ok {
		return types.ValidatedQuery{Page: configs.DEFAULT_PAGE, Limit: configs.DEFAULT_LIMIT}
	}

	return query
}
