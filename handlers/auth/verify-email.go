package AuthHandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awebcode/backend-travel-trippz/middlewares"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// sendEmailVerification issues a fresh email-verify credential for the
// user and hands it to the mailer. The durable record replaces any
// previous one, so only the latest mail is redeemable.
func (h *Handler) sendEmailVerification(c *gin.Context, user types.User) error {
	verifyToken, err := h.Codec.Issue(types.TokenClaims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	}, types.PurposeEmailVerify)
	if err != nil {
		zap.L().Error("email verification token issue failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return err
	}

	expiresAt := time.Now().Add(h.Codec.TTL(types.PurposeEmailVerify))
	_, err = h.VerificationRepository.Upsert(user.ID, types.PurposeEmailVerify, verifyToken, expiresAt)
	if err != nil {
		zap.L().Error("email verification token upsert failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return err
	}

	err = h.Mailer.SendVerificationEmail(c.Request.Context(), user.Email, verifyToken)
	if err != nil {
		zap.L().Error("verification email send failed",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// SendEmailVerification re-sends the verification mail for the signed-in
// user.
func (h *Handler) SendEmailVerification(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	user, err := h.UserRepository.SelectByID(authCtx.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "user_not_found",
			"message": "User not found.",
		})
		return
	}

	if user.EmailVerified {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Email address is already verified.",
		})
		return
	}

	if err := h.sendEmailVerification(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while sending the verification email.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification email sent.",
	})
}

// VerifyEmail redeems a mailed token. The token must both verify
// cryptographically and still exist as a durable record; consuming the
// record makes the mail single-use.
func (h *Handler) VerifyEmail(c *gin.Context) {
	var request types.VerifyEmailRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	claims, err := h.Codec.Verify(request.Token, types.PurposeEmailVerify)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_verification_token",
			"message": "The verification link is invalid or has expired.",
		})
		return
	}

	err = h.VerificationRepository.Consume(claims.UserID, types.PurposeEmailVerify, request.Token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_verification_token",
			"message": "The verification link is invalid or has expired.",
		})
		return
	}

	err = h.UserRepository.MarkEmailVerified(claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while verifying the email address.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email address verified.",
	})
}
