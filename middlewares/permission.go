package middlewares

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/types"
)

// RestrictTo runs strictly after AuthMiddleware and fails closed: no
// principal means not-authenticated even if the gateway was skipped by a
// routing mistake. It also seeds the validated query with pagination
// defaults as a convenience for list handlers.
func RestrictTo(allowedRoles ...types.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, exists := GetAuthContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"message": "You must be logged in to access this resource.",
			})
			c.Abort()
			return
		}

		if !slices.Contains(allowedRoles, authCtx.Role) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "forbidden",
				"message": "You don't have permission to perform this action.",
			})
			c.Abort()
			return
		}

		SetValidatedQuery(c, paginationFromQuery(c))

		c.Next()
	}
}

// RequirePermission checks the role/permission map for operations finer
// than a role set.
func RequirePermission(permission configs.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		authCtx, exists := GetAuthContext(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"message": "You must be logged in to access this resource.",
			})
			c.Abort()
			return
		}

		if !HasPermission(authCtx.Role, permission) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "forbidden",
				"message": "You don't have permission to perform this action.",
			})
			c.Abort()
			return
		}

		SetValidatedQuery(c, paginationFromQuery(c))

		c.Next()
	}
}

// ValidateQuery seeds pagination for public list routes that run without
// RestrictTo.
func ValidateQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		SetValidatedQuery(c, paginationFromQuery(c))
		c.Next()
	}
}

func HasPermission(role types.Role, permission configs.Permission) bool {
	permissions, exists := configs.RolePermissions[role]
	if !exists {
		return false
	}

	return slices.Contains(permissions, permission)
}

func paginationFromQuery(c *gin.Context) types.ValidatedQuery {
	query := types.ValidatedQuery{
		Page:  configs.DEFAULT_PAGE,
		Limit: configs.DEFAULT_LIMIT,
	}

	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			query.Page = page
		}
	}

	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			query.Limit = min(limit, configs.MAX_LIMIT)
		}
	}

	return query
}
