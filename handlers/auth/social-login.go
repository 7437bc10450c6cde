package AuthHandler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/services/social"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// SocialLogin exchanges a provider-asserted token for a first-party
// session. The provider token is verified out-of-band first; only then is
// the asserted email trusted for account lookup or provisioning.
func (h *Handler) SocialLogin(c *gin.Context) {
	var request types.SocialLoginRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	identity, err := h.SocialVerifier.Verify(c.Request.Context(), request.Provider, request.Token)
	if err != nil {
		switch {
		case errors.Is(err, social.ErrMissingEmailClaim):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "missing_email_claim",
				"message": "Your social account did not share an email address.",
			})
		case errors.Is(err, social.ErrUnknownProvider):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "unknown_provider",
				"message": "This social provider is not supported.",
			})
		default:
			zap.L().Info("social token verification failed",
				zap.String("provider", request.Provider),
				zap.Error(err),
			)
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid_social_token",
				"message": "Invalid or expired credentials. Please log in again.",
			})
		}
		return
	}

	// Link by email: an existing account logs in, a new one is
	// provisioned on the spot.
	user, err := h.UserRepository.SelectByEmail(identity.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "server_error",
				"message": "An error occurred while signing in.",
			})
			return
		}

		user, err = h.UserRepository.CreateSocialUser(identity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "server_error",
				"message": "An error occurred while creating the account.",
			})
			return
		}
	}

	if user.Status != types.UserStatusActive {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "account_inactive",
			"message": "Your account is not active.",
		})
		return
	}

	if !h.openSession(c, user) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"user":    user.Profile(),
	})
}
