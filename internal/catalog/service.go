// Package catalog wraps the product browsing endpoints with the filter
// normalization the backend expects.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

var ErrMissingProductID = errors.New("product id is required")

type Gateway interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

type Service struct {
	gw     Gateway
	logger *zap.Logger
}

func NewService(gw Gateway, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, logger: logger}
}

// List fetches one page of products. The filter is normalized first: search
// is trimmed, paging is defaulted and clamped, and only the first selected
// size is kept since the backend accepts a single size value.
func (s *Service) List(ctx context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if len(filter.Sizes) > 1 {
		filter.Sizes = filter.Sizes[:1]
	}

	page, err := s.gw.ListProducts(ctx, filter)
	if err != nil {
		return domain.ProductPage{}, fmt.Errorf("list products: %w", err)
	}
	s.logger.Debug("products listed",
		zap.Int("count", len(page.Products)), zap.Int("total", page.Total))
	return page, nil
}

func (s *Service) Get(ctx context.Context, productID string) (domain.Product, error) {
	if productID == "" {
		return domain.Product{}, ErrMissingProductID
	}
	product, err := s.gw.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("get product %s: %w", productID, err)
	}
	return product, nil
}
