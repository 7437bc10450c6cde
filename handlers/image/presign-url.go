package ImageHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awebcode/backend-travel-trippz/types"
	"github.com/awebcode/backend-travel-trippz/utils"
)

// GeneratePresignedURL hands the client a short-lived direct-upload URL
// for the media bucket.
func (h *Handler) GeneratePresignedURL(c *gin.Context) {
	var request types.PresignURLInput

	err := utils.ValidateRequest(c, &request)
	if err != nil {
		return
	}

	output, err := h.StorageRepository.GeneratePresignedURL(c.Request.Context(), request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "server_error",
			"message": "An error occurred while creating the upload URL.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"upload":  output,
	})
}
