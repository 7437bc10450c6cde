package AuthHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (h *Handler) Login(c *gin.Context) {
	var request types.UserLoginRequest

	// Validate request
	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	// Retrieve user information from the database. The error below is the
	// same whether the account is unknown or the password is wrong.
	user, err := h.UserRepository.SelectByLogin(request.Login)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_credentials",
			"message": "Invalid login or password.",
		})
		return
	}

	// Validate password
	if !utils.CheckPassword(request.Password, user.HashedPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid_credentials",
			"message": "Invalid login or password.",
		})
		return
	}

	// Check user status
	if user.Status != types.UserStatusActive {
		var statusMessage string
		switch user.Status {
		case types.UserStatusSuspended:
			statusMessage = "Your account has been suspended."
		case types.UserStatusDeleted:
			statusMessage = "Your account has been deleted."
		default:
			statusMessage = "Your account is not active."
		}

		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "account_inactive",
			"message": statusMessage,
		})
		return
	}

	// Open a new session and emit the token pair
	if !h.openSession(c, user) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"user":    user.Profile(),
	})
}
