package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoa77/e-project-mobile/internal/domain"
)

type mockGateway struct {
	filter    domain.ProductFilter
	page      domain.ProductPage
	listErr   error
	productID string
	product   domain.Product
	getErr    error
}

func (m *mockGateway) ListProducts(_ context.Context, filter domain.ProductFilter) (domain.ProductPage, error) {
	m.filter = filter
	if m.listErr != nil {
		return domain.ProductPage{}, m.listErr
	}
	return m.page, nil
}

func (m *mockGateway) GetProduct(_ context.Context, productID string) (domain.Product, error) {
	m.productID = productID
	if m.getErr != nil {
		return domain.Product{}, m.getErr
	}
	return m.product, nil
}

func TestList_NormalizesFilter(t *testing.T) {
	gw := &mockGateway{}
	s := NewService(gw, nil)

	_, err := s.List(context.Background(), domain.ProductFilter{
		Search: "  runner  ",
		Page:   0,
		Limit:  0,
		Sizes:  []string{"42", "43", "44"},
	})

	require.NoError(t, err)
	assert.Equal(t, "runner", gw.filter.Search)
	assert.Equal(t, 1, gw.filter.Page)
	assert.Equal(t, defaultPageSize, gw.filter.Limit)
	assert.Equal(t, []string{"42"}, gw.filter.Sizes, "backend accepts one size only")
}

func TestList_ClampsPageSize(t *testing.T) {
	gw := &mockGateway{}
	s := NewService(gw, nil)

	_, err := s.List(context.Background(), domain.ProductFilter{Limit: 500})

	require.NoError(t, err)
	assert.Equal(t, maxPageSize, gw.filter.Limit)
}

func TestList_KeepsExplicitPaging(t *testing.T) {
	gw := &mockGateway{page: domain.ProductPage{Total: 7}}
	s := NewService(gw, nil)

	page, err := s.List(context.Background(), domain.ProductFilter{Page: 3, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 3, gw.filter.Page)
	assert.Equal(t, 20, gw.filter.Limit)
	assert.Equal(t, 7, page.Total)
}

func TestList_WrapsGatewayError(t *testing.T) {
	cause := errors.New("boom")
	s := NewService(&mockGateway{listErr: cause}, nil)

	_, err := s.List(context.Background(), domain.ProductFilter{})

	require.ErrorIs(t, err, cause)
}

func TestGet(t *testing.T) {
	gw := &mockGateway{product: domain.Product{ID: "P1", Name: "runner"}}
	s := NewService(gw, nil)

	product, err := s.Get(context.Background(), "P1")

	require.NoError(t, err)
	assert.Equal(t, "P1", gw.productID)
	assert.Equal(t, "runner", product.Name)
}

func TestGet_MissingID(t *testing.T) {
	gw := &mockGateway{}
	s := NewService(gw, nil)

	_, err := s.Get(context.Background(), "")

	require.ErrorIs(t, err, ErrMissingProductID)
	assert.Empty(t, gw.productID, "no call with an empty id")
}
