package AuthHandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/middlewares"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// SendPhoneVerification texts a short numeric code to the signed-in
// user's number. The code is not a signed token; the durable record is
// the only thing that makes it redeemable.
func (h *Handler) SendPhoneVerification(c *gin.Context) {
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

	if user.PhoneVerified {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Phone number is already verified.",
		})
		return
	}

	code := utils.GenerateNumericCode(configs.PHONE_CODE_LENGTH)
	expiresAt := time.Now().Add(h.Codec.TTL(types.PurposePhoneVerify))

	_, err = h.VerificationRepository.Upsert(user.ID, types.PurposePhoneVerify, code, expiresAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while sending the verification code.",
		})
		return
	}

	if err := h.Texter.SendVerificationCode(c.Request.Context(), user.PhoneNumber, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while sending the verification code.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification code sent.",
	})
}

// VerifyPhone redeems the texted code for the signed-in user.
func (h *Handler) VerifyPhone(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	var request types.VerifyPhoneRequest

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	err = h.VerificationRepository.Consume(authCtx.UserID, types.PurposePhoneVerify, request.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_verification_code",
			"message": "The verification code is invalid or has expired.",
		})
		return
	}

	err = h.UserRepository.MarkPhoneVerified(authCtx.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while verifying the phone number.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Phone number verified.",
	})
}
