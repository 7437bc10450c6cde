package AuthHandler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

func (h *Handler) Register(c *gin.Context) {
	var request types.UserCreateRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	request.Email = strings.ToLower(strings.TrimSpace(request.Email))

	user, err := h.UserRepository.CreateNewUser(request)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			constraintName := pqErr.Constraint
			if strings.Contains(constraintName, "email") {
				c.JSON(http.StatusConflict, gin.H{
					"success": false,
					"error":   "email_exists",
					"message": "This email address is already in use.",
				})
			} else if strings.Contains(constraintName, "phone") {
				c.JSON(http.StatusConflict, gin.H{
					"success": false,
					"error":   "phone_exists",
					"message": "This phone number is already in use.",
				})
			} else {
				c.JSON(http.StatusConflict, gin.H{
					"success": false,
					"error":   "duplicate_entry",
					"message": "This record already exists.",
				})
			}
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the user.",
		})
		return
	}

	// Start email verification right away. A delivery failure is logged
	// inside and must not block the registration; the user can re-request
	// from the app.
	_ = h.sendEmailVerification(c, user)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully. Please verify your email address.",
		"user":    user.Profile(),
	})
}
