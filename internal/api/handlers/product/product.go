package product

import (
	"net/http"

	"gluca-api/internal/api/handlers"
	"gluca-api/internal/core/product"
	"gluca-api/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves barcode product lookups.
type Handler struct {
	service *product.Service
}

// NewHandler creates a new product handler.
func NewHandler(service *product.Service) *Handler {
	return &Handler{service: service}
}

// HandleLookup resolves a scanned barcode to a product record. A product
// missing upstream is a 200 with found=false, not an error.
func (h *Handler) HandleLookup(c *gin.Context) {
	barcode := c.Param("barcode")

	common.LogInfo("processing product lookup",
		zap.String("barcode", barcode),
		zap.String("request_id", c.GetHeader("X-Request-ID")),
	)

	result, err := h.service.Lookup(c.Request.Context(), barcode)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
