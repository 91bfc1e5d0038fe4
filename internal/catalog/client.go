package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/adapter"
	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/ratelimit"
)

// Client defines the interface for catalog client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../mocks/catalog_client.go -package=mocks -mock_names=Client=MockCatalogClient
type Client interface {
	// ExtractIdentity validates a product page URL, fetches it and extracts its identity
	ExtractIdentity(ctx context.Context, rawURL string) (*domain.ExtractedIdentity, error)

	// SearchByIdentifier returns up to 10 catalog candidates for a barcode
	SearchByIdentifier(ctx context.Context, code string) ([]domain.CandidateIdentity, error)

	// FetchPrices reads the current price of every condition, returning nil on any failure
	FetchPrices(ctx context.Context, catalogID string) *domain.PriceFetchResult
}

// PriceChartingClient implements the catalog client against pricecharting
type PriceChartingClient struct {
	config      config.CatalogConfig
	host        string
	httpClient  adapter.HTTPClient
	proxy       ratelimit.Proxy
	clock       adapter.Clock
	json        adapter.JSON
	searchCache *expirable.LRU[string, []domain.CandidateIdentity]
}

// NewClient creates a new catalog client
func NewClient(cfg config.CatalogConfig, httpClient adapter.HTTPClient, proxy ratelimit.Proxy, clock adapter.Clock, json adapter.JSON) (Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("catalog base url is required")
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = strings.TrimRight(cfg.BaseURL, "/") + "/api/products"
	}
	if cfg.SearchCacheSize <= 0 {
		cfg.SearchCacheSize = 256
	}

	return &PriceChartingClient{
		config:      cfg,
		host:        hostOf(cfg.BaseURL),
		httpClient:  httpClient,
		proxy:       proxy,
		clock:       clock,
		json:        json,
		searchCache: expirable.NewLRU[string, []domain.CandidateIdentity](cfg.SearchCacheSize, nil, cfg.SearchCacheTTL),
	}, nil
}

// ExtractIdentity fetches a product page and extracts its identity record
func (c *PriceChartingClient) ExtractIdentity(ctx context.Context, rawURL string) (*domain.ExtractedIdentity, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := ValidateURL(rawURL, c.host); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, rawURL, "text/html")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetch, err)
	}

	identity, err := parseIdentity(body, rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse page: %v", domain.ErrExtraction, err)
	}

	if identity.IDSource == domain.IDSourceURLHash {
		logger.WarnCtx(ctx, "No catalog id found on page, using url hash",
			zap.String("url", rawURL),
			zap.String("catalog_id", identity.CatalogID),
		)
	}

	logger.InfoCtx(ctx, "Extracted catalog identity",
		zap.String("url", rawURL),
		zap.String("catalog_id", identity.CatalogID),
		zap.String("name", identity.Name),
		zap.String("platform", identity.Platform),
		zap.String("id_source", string(identity.IDSource)),
	)

	return identity, nil
}

// FetchPrices reads the three price slots of a product page
// observed_at is captured once so the rows of one fetch share a timestamp
func (c *PriceChartingClient) FetchPrices(ctx context.Context, catalogID string) *domain.PriceFetchResult {
	catalogID = strings.TrimSpace(catalogID)
	if catalogID == "" {
		logger.WarnCtx(ctx, "Skipping price fetch for empty catalog id")
		return nil
	}

	pageURL := productURL(c.config.BaseURL, catalogID)
	body, err := c.get(ctx, pageURL, "text/html")
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("%w: %v", domain.ErrFetch, err),
			zap.String("catalog_id", catalogID),
			zap.String("url", pageURL),
		)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("%w: failed to parse price page: %v", domain.ErrExtraction, err),
			zap.String("catalog_id", catalogID),
		)
		return nil
	}

	result := &domain.PriceFetchResult{
		CatalogID:  catalogID,
		ObservedAt: c.clock.Now().UTC(),
		Prices:     parsePrices(doc),
	}

	fields := []zap.Field{zap.String("catalog_id", catalogID)}
	for _, cond := range domain.PriceConditions {
		if p := result.Prices[cond]; p != nil {
			fields = append(fields, zap.Int64(string(cond)+"_cents", *p))
		}
	}
	logger.InfoCtx(ctx, "Retrieved prices", fields...)

	return result
}

// get performs a rate-limited GET against the catalog
func (c *PriceChartingClient) get(ctx context.Context, rawURL, accept string) ([]byte, error) {
	return ratelimit.Request(ctx, c.proxy, domain.CATALOG_PROVIDER, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, rawURL, adapter.RequestOptions{Headers: c.headers(accept)})
	})
}

func (c *PriceChartingClient) headers(accept string) map[string]string {
	headers := map[string]string{"Accept": accept}
	if c.config.UserAgent != "" {
		headers["User-Agent"] = c.config.UserAgent
	}
	return headers
}
