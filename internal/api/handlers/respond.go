// Package handlers holds the pieces shared by the endpoint handler packages.
package handlers

import (
	"errors"
	"net/http"

	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondError maps a service error to its HTTP response. Validation errors
// become 400s; CustomErrors carry their own status and code; anything else is
// an opaque 500.
func RespondError(c *gin.Context, err error) {
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: err.Error(),
			Code:  common.ErrCodeInvalidRequest,
		})
		return
	}

	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, common.ErrorResponse{
			Error: custom.Message,
			Code:  custom.Code,
		})
		return
	}

	common.LogError("unclassified handler error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Error: "Internal server error",
		Code:  common.ErrCodeInternalError,
	})
}
