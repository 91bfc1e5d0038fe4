package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-game-pricer/internal/api/rest"
	"github.com/feral-file/ff-game-pricer/internal/mocks"
)

func TestSetupRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := mocks.NewMockAPIHandler(ctrl)
	router := gin.New()
	rest.SetupRoutes(router, handler)

	respond := func(c *gin.Context) { c.Status(http.StatusTeapot) }

	tests := []struct {
		method string
		path   string
		expect func()
	}{
		{http.MethodGet, "/health", func() { handler.EXPECT().HealthCheck(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/collection", func() { handler.EXPECT().AddToCollection(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/collection", func() { handler.EXPECT().ListCollection(gomock.Any()).Do(respond) }},
		{http.MethodPut, "/api/v1/collection/1/condition", func() { handler.EXPECT().UpdateOwnershipCondition(gomock.Any()).Do(respond) }},
		{http.MethodDelete, "/api/v1/collection/1", func() { handler.EXPECT().RemoveOwnership(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/collection/1/lend", func() { handler.EXPECT().MarkLent(gomock.Any()).Do(respond) }},
		{http.MethodDelete, "/api/v1/collection/1/lend", func() { handler.EXPECT().MarkReturned(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/collection/1/sale", func() { handler.EXPECT().MarkForSale(gomock.Any()).Do(respond) }},
		{http.MethodDelete, "/api/v1/collection/1/sale", func() { handler.EXPECT().UnmarkForSale(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/wishlist", func() { handler.EXPECT().AddToWishlist(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/wishlist", func() { handler.EXPECT().ListWishlist(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/wishlist/1/purchase", func() { handler.EXPECT().PurchaseWant(gomock.Any()).Do(respond) }},
		{http.MethodPut, "/api/v1/wishlist/1/condition", func() { handler.EXPECT().UpdateWantCondition(gomock.Any()).Do(respond) }},
		{http.MethodDelete, "/api/v1/wishlist/1", func() { handler.EXPECT().RemoveWant(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/catalog/search", func() { handler.EXPECT().SearchCatalog(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/games/1/refresh", func() { handler.EXPECT().RefreshPrice(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/games/1/last_price_update", func() { handler.EXPECT().GetLastPriceUpdate(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/games/1/price_history", func() { handler.EXPECT().GetGamePriceHistory(gomock.Any()).Do(respond) }},
		{http.MethodPost, "/api/v1/prices/refresh", func() { handler.EXPECT().TriggerBatchRefresh(gomock.Any()).Do(respond) }},
		{http.MethodGet, "/api/v1/prices/1234/loose", func() { handler.EXPECT().GetPriceHistory(gomock.Any()).Do(respond) }},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			tt.expect()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusTeapot, w.Code)
		})
	}
}
