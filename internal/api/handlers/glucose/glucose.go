package glucose

import (
	"net/http"
	"strconv"

	"gluca-api/internal/core/glucose"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// TargetResponse maps a glucose reading to its carb budget and range label.
type TargetResponse struct {
	common.GlucoseReading
	MaxCarbs int    `json:"maxCarbs"`
	Label    string `json:"label"`
}

// HandleTarget computes the per-meal carb budget for a glucose reading. The
// reading is transient; nothing is stored.
func HandleTarget(c *gin.Context) {
	raw := c.Query("value")
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "A valid numeric glucose value is required.",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	c.JSON(http.StatusOK, TargetResponse{
		GlucoseReading: common.GlucoseReading{
			Value:      value,
			RecordedAt: c.Query("recordedAt"),
		},
		MaxCarbs: glucose.MaxCarbs(value),
		Label:    glucose.Label(value),
	})
}
