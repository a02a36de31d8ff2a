package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jetfriend/internal/models/response_models"
)

func RespondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response_models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// HandleServiceError maps pipeline errors onto the façade's error contract:
// 400 for malformed input, 503 for a missing required API key, 500 otherwise.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMessageRequired), errors.Is(err, ErrQueryRequired):
		RespondBadRequest(c, err.Error())
	case errors.Is(err, ErrLLMNotConfigured):
		c.JSON(http.StatusServiceUnavailable, response_models.ErrorResponse{
			Success: false,
			Error:   err.Error(),
			Message: "Please configure the required API key to enable this feature.",
		})
	default:
		c.JSON(http.StatusInternalServerError, response_models.ErrorResponse{
			Success: false,
			Error:   "Internal server error",
			Message: "Sorry, I encountered an error processing your request.",
		})
	}
}
