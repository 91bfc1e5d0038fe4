package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-game-pricer/internal/api/shared/dto"
	"github.com/feral-file/ff-game-pricer/internal/collection"
	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/logger"
	"github.com/feral-file/ff-game-pricer/internal/refresher"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// AddToCollection resolves a catalog URL or barcode and records an owned copy
	// POST /api/v1/collection
	AddToCollection(c *gin.Context)

	// AddToWishlist resolves a catalog URL or barcode and records a want
	// POST /api/v1/wishlist
	AddToWishlist(c *gin.Context)

	// ListCollection lists every owned copy with its latest prices
	// GET /api/v1/collection
	ListCollection(c *gin.Context)

	// ListWishlist lists every want with its latest prices
	// GET /api/v1/wishlist
	ListWishlist(c *gin.Context)

	// SearchCatalog returns catalog candidates for a barcode
	// GET /api/v1/catalog/search?code=<barcode>
	SearchCatalog(c *gin.Context)

	// PurchaseWant moves a want into the collection
	// POST /api/v1/wishlist/:id/purchase
	PurchaseWant(c *gin.Context)

	// UpdateWantCondition changes the wanted condition
	// PUT /api/v1/wishlist/:id/condition
	UpdateWantCondition(c *gin.Context)

	// RemoveWant deletes a want
	// DELETE /api/v1/wishlist/:id
	RemoveWant(c *gin.Context)

	// UpdateOwnershipCondition changes the condition of an owned copy
	// PUT /api/v1/collection/:id/condition
	UpdateOwnershipCondition(c *gin.Context)

	// RemoveOwnership deletes an owned copy
	// DELETE /api/v1/collection/:id
	RemoveOwnership(c *gin.Context)

	// MarkLent records an owned copy as lent out
	// POST /api/v1/collection/:id/lend
	MarkLent(c *gin.Context)

	// MarkReturned closes the open lending of an owned copy
	// DELETE /api/v1/collection/:id/lend
	MarkReturned(c *gin.Context)

	// MarkForSale lists an owned copy for sale
	// POST /api/v1/collection/:id/sale
	MarkForSale(c *gin.Context)

	// UnmarkForSale removes the sale listing of an owned copy
	// DELETE /api/v1/collection/:id/sale
	UnmarkForSale(c *gin.Context)

	// RefreshPrice fetches and records current prices for one game
	// POST /api/v1/games/:id/refresh
	RefreshPrice(c *gin.Context)

	// GetLastPriceUpdate returns when a game was last priced
	// GET /api/v1/games/:id/last_price_update
	GetLastPriceUpdate(c *gin.Context)

	// GetGamePriceHistory returns the price series of a game in its tracked condition
	// GET /api/v1/games/:id/price_history
	GetGamePriceHistory(c *gin.Context)

	// GetPriceHistory returns the price series of a catalog identity
	// GET /api/v1/prices/:catalog_id/:condition
	GetPriceHistory(c *gin.Context)

	// TriggerBatchRefresh queues a batch refresh of the least recently priced games
	// POST /api/v1/prices/refresh
	TriggerBatchRefresh(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service collection.Service
	queue   refresher.Queue
}

// NewHandler creates a new REST API handler
func NewHandler(service collection.Service, queue refresher.Queue) Handler {
	return &handler{
		service: service,
		queue:   queue,
	}
}

func (h *handler) AddToCollection(c *gin.Context) {
	h.addGame(c, domain.TargetCollection)
}

func (h *handler) AddToWishlist(c *gin.Context) {
	h.addGame(c, domain.TargetWishlist)
}

func (h *handler) addGame(c *gin.Context, target domain.Target) {
	var req dto.AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := h.service.ReconcileAndFetch(c.Request.Context(), req.ToAddRequest(target))
	if err != nil {
		respondError(c, err, fmt.Sprintf("Failed to add game to %s", target))
		return
	}

	c.JSON(http.StatusCreated, dto.NewAddGameResponse(result))
}

func (h *handler) ListCollection(c *gin.Context) {
	items, err := h.service.ListCollection(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list collection")
		return
	}

	c.JSON(http.StatusOK, dto.NewCollectionResponse(items))
}

func (h *handler) ListWishlist(c *gin.Context) {
	items, err := h.service.ListWishlist(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list wishlist")
		return
	}

	c.JSON(http.StatusOK, dto.NewWishlistResponse(items))
}

func (h *handler) SearchCatalog(c *gin.Context) {
	params, err := ParseSearchQuery(c)
	if err != nil {
		respondValidationError(c, err)
		return
	}
	if err := params.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	candidates, err := h.service.SearchByIdentifier(c.Request.Context(), params.Code)
	if err != nil {
		respondError(c, err, "Failed to search catalog")
		return
	}
	if candidates == nil {
		candidates = []domain.CandidateIdentity{}
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Candidates: candidates})
}

func (h *handler) PurchaseWant(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	var req dto.PurchaseWantRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	record, err := h.service.PurchaseWant(c.Request.Context(), id, req.ToPurchaseRequest())
	if err != nil {
		respondError(c, err, "Failed to purchase want")
		return
	}

	c.JSON(http.StatusCreated, dto.NewOwnershipResponse(record))
}

// bindCondition parses the id path parameter and a condition body
func bindCondition(c *gin.Context) (uint64, string, bool) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return 0, "", false
	}

	var req dto.UpdateConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return 0, "", false
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return 0, "", false
	}
	return id, req.Condition, true
}

func (h *handler) UpdateWantCondition(c *gin.Context) {
	id, condition, ok := bindCondition(c)
	if !ok {
		return
	}

	if err := h.service.UpdateWantCondition(c.Request.Context(), id, condition); err != nil {
		respondError(c, err, "Failed to update want")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RemoveWant(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.service.RemoveWant(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to remove want")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) UpdateOwnershipCondition(c *gin.Context) {
	id, condition, ok := bindCondition(c)
	if !ok {
		return
	}

	if err := h.service.UpdateOwnershipCondition(c.Request.Context(), id, condition); err != nil {
		respondError(c, err, "Failed to update ownership")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RemoveOwnership(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.service.RemoveOwnership(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to remove ownership")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) MarkLent(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	var req dto.LendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	lending, err := h.service.MarkLent(c.Request.Context(), id, req.LentTo, req.Note)
	if err != nil {
		respondError(c, err, "Failed to lend game")
		return
	}

	c.JSON(http.StatusCreated, dto.NewLendingResponse(lending))
}

func (h *handler) MarkReturned(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.service.MarkReturned(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to return game")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) MarkForSale(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	var req dto.SaleRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	listing, err := h.service.MarkForSale(c.Request.Context(), id, req.AskingPriceCents, req.Notes)
	if err != nil {
		respondError(c, err, "Failed to list game for sale")
		return
	}

	c.JSON(http.StatusOK, dto.NewSaleListingResponse(listing))
}

func (h *handler) UnmarkForSale(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.service.UnmarkForSale(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to remove sale listing")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) RefreshPrice(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	ok, err := h.service.RefreshPrice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to refresh price")
		return
	}

	c.JSON(http.StatusOK, dto.RefreshPriceResponse{LogicalGameID: id, Success: ok})
}

func (h *handler) GetLastPriceUpdate(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	last, err := h.service.LastPriceUpdate(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get last price update")
		return
	}

	c.JSON(http.StatusOK, dto.LastPriceUpdateResponse{LogicalGameID: id, LastUpdated: last})
}

func (h *handler) GetGamePriceHistory(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		respondValidationError(c, err)
		return
	}

	history, err := h.service.GamePriceHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get price history")
		return
	}

	c.JSON(http.StatusOK, dto.PriceHistoryResponse{
		LogicalGameID: &history.LogicalGameID,
		CatalogID:     history.CatalogID,
		Condition:     history.Condition,
		Points:        pointsOrEmpty(history.Points),
	})
}

func (h *handler) GetPriceHistory(c *gin.Context) {
	catalogID := c.Param("catalog_id")
	condition := c.Param("condition")

	points, err := h.service.PriceHistory(c.Request.Context(), catalogID, condition)
	if err != nil {
		respondError(c, err, "Failed to get price history")
		return
	}

	c.JSON(http.StatusOK, dto.PriceHistoryResponse{
		CatalogID: catalogID,
		Condition: domain.Condition(condition),
		Points:    pointsOrEmpty(points),
	})
}

func pointsOrEmpty(points []domain.PricePoint) []domain.PricePoint {
	if points == nil {
		return []domain.PricePoint{}
	}
	return points
}

func (h *handler) TriggerBatchRefresh(c *gin.Context) {
	var req dto.BatchRefreshRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.queue.Enqueue(req.Limit); err != nil {
		if errors.Is(err, refresher.ErrQueueFull) {
			respondTooManyRequests(c, "Too many batch refreshes are waiting", err.Error())
			return
		}
		respondError(c, err, "Failed to queue batch refresh")
		return
	}

	logger.InfoCtx(c.Request.Context(), "Batch refresh queued", zap.Int("limit", req.Limit))
	c.JSON(http.StatusAccepted, dto.BatchRefreshResponse{Limit: req.Limit, Pending: h.queue.Pending()})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-game-pricer-api",
	})
}
