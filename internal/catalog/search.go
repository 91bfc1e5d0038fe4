package catalog

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/ratelimit"
)

// validBarcodeLengths are EAN-8, UPC-A and EAN-13
var validBarcodeLengths = []int{8, 12, 13}

// SearchResponse is the payload of the catalog product search endpoint
type SearchResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error-message"`
	Products     []SearchProduct `json:"products"`
}

// SearchProduct is one product hit of the search endpoint
type SearchProduct struct {
	ID          string `json:"id"`
	ProductName string `json:"product-name"`
	ConsoleName string `json:"console-name"`
	Category    string `json:"category"`
}

// NormalizeBarcode strips non-digits and validates the barcode length
func NormalizeBarcode(code string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			return r
		}
		return -1
	}, code)

	if !slices.Contains(validBarcodeLengths, len(digits)) {
		return "", fmt.Errorf("%w: barcode must have 8, 12 or 13 digits, got %d", domain.ErrInvalidSource, len(digits))
	}
	return digits, nil
}

// SearchByIdentifier looks up catalog candidates for a barcode
func (c *PriceChartingClient) SearchByIdentifier(ctx context.Context, code string) ([]domain.CandidateIdentity, error) {
	digits, err := NormalizeBarcode(code)
	if err != nil {
		return nil, err
	}

	if cached, ok := c.searchCache.Get(digits); ok {
		logger.DebugCtx(ctx, "Search cache hit", zap.String("code", digits))
		return slices.Clone(cached), nil
	}

	query := url.Values{}
	query.Set("q", digits)
	if c.config.APIToken != "" {
		query.Set("t", c.config.APIToken)
	}

	body, err := ratelimit.Request(ctx, c.proxy, domain.CATALOG_PROVIDER, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, c.config.SearchURL, adapter.RequestOptions{
			Headers: c.headers("application/json"),
			Query:   query,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: search %s: %v", domain.ErrFetch, digits, err)
	}

	var response SearchResponse
	if err := c.json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal search response: %v", domain.ErrFetch, err)
	}
	if response.Status != "" && response.Status != "success" {
		return nil, fmt.Errorf("%w: search returned %s: %s", domain.ErrFetch, response.Status, response.ErrorMessage)
	}

	candidates := c.toCandidates(response.Products)
	c.searchCache.Add(digits, candidates)

	logger.InfoCtx(ctx, "Catalog search completed",
		zap.String("code", digits),
		zap.Int("products", len(response.Products)),
		zap.Int("candidates", len(candidates)),
	)

	return slices.Clone(candidates), nil
}

// toCandidates filters to the configured category, drops repeated (name, platform) pairs and caps the list
// Products without a category are kept since not every search deployment reports it
func (c *PriceChartingClient) toCandidates(products []SearchProduct) []domain.CandidateIdentity {
	type key struct{ name, platform string }
	seen := make(map[key]struct{}, len(products))
	candidates := make([]domain.CandidateIdentity, 0, min(len(products), domain.MAX_SEARCH_RESULTS))

	for _, p := range products {
		if len(candidates) == domain.MAX_SEARCH_RESULTS {
			break
		}
		if p.Category != "" && p.Category != c.config.SearchCategory {
			continue
		}

		name := strings.TrimSpace(p.ProductName)
		platform := strings.TrimSpace(p.ConsoleName)
		k := key{name: name, platform: platform}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		candidates = append(candidates, domain.CandidateIdentity{
			CatalogID: strings.TrimSpace(p.ID),
			Name:      name,
			Platform:  platform,
			URL:       productURL(c.config.BaseURL, CleanPlatformName(platform)+"/"+CleanGameName(name)),
		})
	}

	return candidates
}
