package preference

import (
	"fmt"
	"net/http"
	"strings"

	"gluca-api/internal/api/handlers"
	"gluca-api/internal/core/preference"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the dietary preference document.
type Handler struct {
	store *preference.Store
}

// NewHandler creates a new preference handler.
func NewHandler(store *preference.Store) *Handler {
	return &Handler{store: store}
}

// HandleGet returns the current preference document.
func (h *Handler) HandleGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// HandlePut replaces the whole preference document. The diet, when present,
// must be one of the supported diet types.
func (h *Handler) HandlePut(c *gin.Context) {
	var prefs common.DietaryPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		common.LogWarn("invalid preference payload",
			zap.Error(err),
			zap.String("request_id", c.GetHeader("X-Request-ID")),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if prefs.Diet != "" && !common.IsValidDiet(prefs.Diet) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Unsupported diet %q. Supported diets: %s.", prefs.Diet, strings.Join(common.DietTypes, ", ")),
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if err := h.store.Replace(c.Request.Context(), prefs); err != nil {
		common.LogError("failed to persist preferences", zap.Error(err))
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.store.Snapshot())
}
