package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/shrijankc81-blip/Portfolio/pkg/errors"
	"github.com/shrijankc81-blip/Portfolio/pkg/logger"
)

// respondError maps service errors onto the `{error: ...}` JSON shape
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unexpected handler error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
