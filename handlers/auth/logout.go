package AuthHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/middlewares"
)

// Logout revokes the current session. The cookies are cleared either way;
// the tokens themselves stay valid until expiry but the dead session
// makes them useless.
func (h *Handler) Logout(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	if err := h.SessionRepository.Revoke(authCtx.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while logging out.",
		})
		return
	}

	middlewares.ClearSessionCookies(c, h.Config)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out.",
	})
}

// LogoutOtherDevices revokes every session except the caller's own.
func (h *Handler) LogoutOtherDevices(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	if err := h.SessionRepository.RevokeAllExcept(authCtx.UserID, authCtx.SessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while logging out other devices.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Other devices logged out.",
	})
}

// LogoutAllDevices revokes every session, the caller's included.
func (h *Handler) LogoutAllDevices(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	if err := h.SessionRepository.RevokeAll(authCtx.UserID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while logging out.",
		})
		return
	}

	middlewares.ClearSessionCookies(c, h.Config)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "All devices logged out.",
	})
}

// Sessions lists the caller's live sessions for the devices view.
func (h *Handler) Sessions(c *gin.Context) {
	authCtx, ok := middlewares.GetAuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "unauthorized",
			"message": "Invalid or expired credentials. Please log in again.",
		})
		return
	}

	sessions, err := h.SessionRepository.SelectActiveByUserID(authCtx.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while listing sessions.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"sessions": sessions,
		"current":  authCtx.SessionID,
	})
}
