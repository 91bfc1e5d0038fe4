package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/feral-file/ff-game-pricer/internal/api/shared/errors"
)

// SearchQueryParams holds query parameters for GET /catalog/search
type SearchQueryParams struct {
	Code string `form:"code"`
}

// Validate validates the query parameters
func (p *SearchQueryParams) Validate() error {
	if strings.TrimSpace(p.Code) == "" {
		return apierrors.NewValidationError("code is required")
	}
	return nil
}

// ParseSearchQuery parses query parameters for GET /catalog/search
func ParseSearchQuery(c *gin.Context) (*SearchQueryParams, error) {
	var params SearchQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}

// ParseIDParam parses a positive numeric path parameter
func ParseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apierrors.NewValidationError(name + " must be a positive integer")
	}
	return id, nil
}
