// Package product turns barcode lookups into scanned-product records with a
// bounded set of cleaned ingredient keywords.
package product

import (
	"context"
	"regexp"
	"strings"

	"gluca-api/internal/core/cache"
	"gluca-api/internal/core/openfoodfacts"
	"gluca-api/internal/pkg/common"

	"go.uber.org/zap"
)

// Extraction bounds: at most maxKeywords entries, each between minKeywordLen
// and maxKeywordLen characters.
const (
	maxKeywords   = 7
	minKeywordLen = 2
	maxKeywordLen = 39
)

var (
	barcodePattern     = regexp.MustCompile(`^\d{4,20}$`)
	localePrefix       = regexp.MustCompile(`^[a-z]{2}:`)
	parentheticalAside = regexp.MustCompile(`\(.*?\)`)
	percentageNumber   = regexp.MustCompile(`\d+(\.\d+)?%?`)
)

// LookupResult is the outcome of a barcode lookup. A product missing upstream
// is a normal result, not an error.
type LookupResult struct {
	Found   bool                   `json:"found"`
	Barcode string                 `json:"barcode"`
	Product *common.ScannedProduct `json:"product,omitempty"`
}

// Lookuper fetches a raw product record for a barcode.
type Lookuper interface {
	Lookup(ctx context.Context, barcode string) (*openfoodfacts.Product, bool, error)
}

// Service performs product lookups with ingredient keyword extraction.
type Service struct {
	client Lookuper
	cache  *cache.Manager
}

// NewService creates a new product service.
func NewService(client Lookuper, cacheManager *cache.Manager) *Service {
	return &Service{
		client: client,
		cache:  cacheManager,
	}
}

// Lookup validates the barcode, fetches the product record and extracts
// ingredient keywords. The barcode is rejected before any network call when
// it is not 4-20 digits.
func (s *Service) Lookup(ctx context.Context, barcode string) (*LookupResult, error) {
	if !barcodePattern.MatchString(barcode) {
		return nil, common.NewValidationError("A valid numeric barcode is required.")
	}

	cacheKey := "product:" + barcode
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		var result LookupResult
		if err := common.ParseJSON(cached, &result); err == nil {
			return &result, nil
		}
	}

	raw, found, err := s.client.Lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if !found {
		common.LogInfo("product not found upstream",
			zap.String("barcode", barcode),
		)
		return &LookupResult{Found: false, Barcode: barcode}, nil
	}

	result := &LookupResult{
		Found:   true,
		Barcode: barcode,
		Product: &common.ScannedProduct{
			Barcode:           barcode,
			Name:              raw.ProductName,
			Brand:             raw.Brands,
			Image:             raw.ImageFrontURL,
			IngredientsText:   raw.IngredientsText,
			IngredientsTags:   raw.IngredientsTags,
			ParsedIngredients: ExtractKeywords(raw.IngredientsTags, raw.IngredientsText),
			Nutriments:        raw.Nutriments,
		},
	}

	if encoded, err := common.ToJSON(result); err == nil {
		_ = s.cache.Set(ctx, cacheKey, encoded)
	}

	return result, nil
}

// ExtractKeywords derives usable ingredient keywords from a product record.
// Structured tags are preferred over free text because they are cleaner.
func ExtractKeywords(tags []string, text string) []string {
	if len(tags) > 0 {
		return keywordsFromTags(tags)
	}
	if text != "" {
		return keywordsFromText(text)
	}
	return []string{}
}

// keywordsFromTags cleans structured tags such as "en:wheat-flour": the
// two-letter locale prefix is stripped and hyphens become spaces.
func keywordsFromTags(tags []string) []string {
	out := []string{}
	for _, tag := range tags {
		cleaned := localePrefix.ReplaceAllString(tag, "")
		cleaned = strings.ReplaceAll(cleaned, "-", " ")
		cleaned = strings.TrimSpace(cleaned)
		if !keywordLengthOK(cleaned) {
			continue
		}
		out = append(out, cleaned)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

// keywordsFromText splits a free-text ingredient list on commas, dropping
// parenthetical asides and percentage numbers.
func keywordsFromText(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		cleaned := parentheticalAside.ReplaceAllString(part, "")
		cleaned = percentageNumber.ReplaceAllString(cleaned, "")
		cleaned = strings.ToLower(strings.TrimSpace(cleaned))
		if !keywordLengthOK(cleaned) {
			continue
		}
		out = append(out, cleaned)
		if len(out) == maxKeywords {
			break
		}
	}
	return out
}

func keywordLengthOK(s string) bool {
	return len(s) >= minKeywordLen && len(s) <= maxKeywordLen
}
