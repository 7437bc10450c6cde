package AuthHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// ResetPassword redeems a mailed reset token. The token is consumed
// before the password changes, and every session is revoked afterwards so
// a stolen refresh token dies with the old password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var request types.ResetPasswordRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	claims, err := h.Codec.Verify(request.Token, types.PurposePasswordReset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_reset_token",
			"message": "The reset link is invalid or has expired.",
		})
		return
	}

	err = h.VerificationRepository.Consume(claims.UserID, types.PurposePasswordReset, request.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_reset_token",
			"message": "The reset link is invalid or has expired.",
		})
		return
	}

	err = h.UserRepository.UpdatePassword(claims.UserID, request.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while updating the password.",
		})
		return
	}

	// The user must log in again everywhere with the new password.
	if err := h.SessionRepository.RevokeAll(claims.UserID); err != nil {
		zap.L().Error("session revocation after password reset failed",
			zap.String("user_id", claims.UserID.String()),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password updated. Please log in with your new password.",
	})
}
