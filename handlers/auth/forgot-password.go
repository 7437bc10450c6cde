package AuthHandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// ForgotPassword starts the reset flow. The response is the same whether
// or not the account exists, so the endpoint cannot be used to probe for
// registered addresses.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var request types.ForgotPasswordRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	user, err := h.UserRepository.SelectByEmail(request.Email)
	if err == nil && user.Status == types.UserStatusActive {
		h.sendPasswordReset(c, user)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "If an account exists for this email, a reset link has been sent.",
	})
}

func (h *Handler) sendPasswordReset(c *gin.Context, user types.User) {
	resetToken, err := h.Codec.Issue(types.TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, types.PurposePasswordReset)
	if err != nil {
		zap.L().Error("password reset token issue failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return
	}

	expiresAt := time.Now().Add(h.Codec.TTL(types.PurposePasswordReset))
	_, err = h.VerificationRepository.Upsert(user.ID, types.PurposePasswordReset, resetToken, expiresAt)
	if err != nil {
		zap.L().Error("password reset token upsert failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return
	}

	err = h.Mailer.SendPasswordResetEmail(c.Request.Context(), user.Email, resetToken)
	if err != nil {
		zap.L().Error("password reset email send failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
	}
}
