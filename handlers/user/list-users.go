package UserHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/middlewares"
	"github.com/awebcode/backend-travel-trippz/types"
)

// ListUsers serves the admin account overview.
func (h *Handler) ListUsers(c *gin.Context) {
	query := middlewares.GetValidatedQuery(c)

	users, err := h.UserRepository.SelectUsers(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while listing users.",
		})
		return
	}

	profiles := make([]types.UserProfileResponse, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   profiles,
		"page":    query.Page,
		"limit":   query.Limit,
	})
}
