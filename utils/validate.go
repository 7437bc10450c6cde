package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidateRequest binds the JSON body into request and answers the caller
// with a 400 envelope itself on failure; handlers only need to return.
func ValidateRequest(c *gin.Context, request any) error {
	if err := c.ShouldBindJSON(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_request",
			"message": "Invalid request format: " + err.Error(),
		})
		return err
	}

	return nil
}
