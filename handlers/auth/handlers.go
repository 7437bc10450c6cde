package AuthHandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/configs"
	"github.com/awebcode/backend-travel-trippz/middlewares"
	SessionRepository "github.com/awebcode/backend-travel-trippz/repositories/session"
	UserRepository "github.com/awebcode/backend-travel-trippz/repositories/user"
	VerificationRepository "github.com/awebcode/backend-travel-trippz/repositories/verification"
	"github.com/awebcode/backend-travel-trippz/services/notify"
	"github.com/awebcode/backend-travel-trippz/services/social"
	token "github.com/awebcode/backend-travel-trippz/services/token"
	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

type Handler struct {
	Config                 configs.Config
	Codec                  *token.Codec
	UserRepository         *UserRepository.Repository
	SessionRepository      *SessionRepository.Repository
	VerificationRepository *VerificationRepository.Repository
	SocialVerifier         social.Verifier
	Mailer                 notify.Mailer
	Texter                 notify.Texter
}

func NewHandler(
	cfg configs.Config,
	codec *token.Codec,
	u *UserRepository.Repository,
	s *SessionRepository.Repository,
	v *VerificationRepository.Repository,
	verifier social.Verifier,
	mailer notify.Mailer,
	texter notify.Texter,
) *Handler {
	return &Handler{
		Config:                 cfg,
		Codec:                  codec,
		UserRepository:         u,
		SessionRepository:      s,
		VerificationRepository: v,
		SocialVerifier:         verifier,
		Mailer:                 mailer,
		Texter:                 texter,
	}
}

// openSession is the single issuance path every successful authentication
// (password or social) terminates in: one new session, one token pair
// bound to it, both transports answered.
func (h *Handler) openSession(c *gin.Context, user types.User) bool {
	session, err := h.SessionRepository.Create(types.SessionCreateRequest{
		UserID:    user.ID,
		IPAddress: utils.GetTrueClientIP(c),
		UserAgent: c.Request.UserAgent(),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "session_create_failed",
			"message": "An error occurred while creating the session.",
		})
		return false
	}

	claims := types.TokenClaims{
		UserID:      user.ID,
		Role:        user.Role,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		SessionID:   session.ID,
	}

	accessToken, err := h.Codec.Issue(claims, types.PurposeAccess)
	if err == nil {
		var refreshToken string
		refreshToken, err = h.Codec.Issue(claims, types.PurposeRefresh)
		if err == nil {
			middlewares.EmitLoginTokenPair(c, h.Config, accessToken, refreshToken)
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "token_generation_failed",
			"message": "An error occurred while creating the session.",
		})
		return false
	}

	// A failed timestamp update should not break the login.
	_ = h.UserRepository.UpdateLastLogin(user.ID, time.Now())

	return true
}
