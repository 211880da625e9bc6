// Package openfoodfacts is the typed client for the Open Food Facts product
// database.
package openfoodfacts

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gluca-api/internal/infrastructure/config"
	"gluca-api/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

// Product is the subset of the Open Food Facts product record the app
// consumes.
type Product struct {
	ProductName     string         `json:"product_name"`
	Brands          string         `json:"brands"`
	ImageFrontURL   string         `json:"image_front_url"`
	IngredientsText string         `json:"ingredients_text"`
	IngredientsTags []string       `json:"ingredients_tags"`
	Nutriments      map[string]any `json:"nutriments"`
}

type productResponse struct {
	Status  int      `json:"status"`
	Product *Product `json:"product"`
}

// Client is the Open Food Facts API client.
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewClient creates a new Open Food Facts client. OFF asks integrators to
// send an identifying User-Agent.
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.OpenFoodFacts.BaseURL).
		SetTimeout(cfg.OpenFoodFacts.Timeout).
		SetHeader("User-Agent", cfg.OpenFoodFacts.UserAgent)

	return &Client{
		config: cfg,
		client: client,
	}
}

// Lookup fetches the product record for a barcode. A missing product (non-2xx
// response or status != 1) is a normal outcome reported as found=false; only
// transport-level failures are errors.
func (c *Client) Lookup(ctx context.Context, barcode string) (*Product, bool, error) {
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/v2/product/%s.json", barcode))
	common.LogUpstreamCall("openfoodfacts", "product", time.Since(start), err)

	if err != nil {
		return nil, false, common.NewError(common.ErrCodeUpstreamUnreachable, "Failed to reach Open Food Facts.", http.StatusBadGateway, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, false, nil
	}

	var parsed productResponse
	if err := common.ParseJSONBytes(resp.Body(), &parsed); err != nil {
		return nil, false, nil
	}
	if parsed.Status != 1 || parsed.Product == nil {
		return nil, false, nil
	}

	return parsed.Product, true, nil
}
