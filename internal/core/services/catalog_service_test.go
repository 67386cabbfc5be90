package services

import (
	"context"
	"testing"

	"shwe-topup/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalogService() *CatalogService {
	atom := &models.Operator{ID: 1, Name: "atom", DisplayName: "ATOM", ColorScheme: "blue"}
	mpt := &models.Operator{ID: 2, Name: "mpt", DisplayName: "MPT", ColorScheme: "yellow"}
	data := &models.Category{ID: 1, Name: "data", DisplayName: "Data Packages", Icon: "wifi"}
	minutes := &models.Category{ID: 2, Name: "minutes", DisplayName: "Minutes", Icon: "phone"}

	return NewCatalogService(&fakeCatalogRepo{
		products: []*models.Product{
			{ID: 1, Name: "ATOM 5GB", IsActive: true, Operator: atom, Category: data},
			{ID: 2, Name: "ATOM 100 Min", IsActive: true, Operator: atom, Category: minutes},
			{ID: 3, Name: "MPT 5GB", IsActive: true, Operator: mpt, Category: data},
			{ID: 4, Name: "MPT Old Pack", IsActive: false, Operator: mpt, Category: data},
		},
		categories: []*models.Category{data, minutes},
		operators:  []*models.Operator{atom, mpt},
	})
}

func TestBrowseProductsNoFilter(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	for _, filter := range []string{"", FilterAll} {
		products, err := svc.BrowseProducts(ctx, filter, filter)
		require.NoError(t, err)
		// Inactive products are never listed
		assert.Len(t, products, 3)
	}
}

func TestBrowseProductsByCategory(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	products, err := svc.BrowseProducts(ctx, "data", FilterAll)
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, product := range products {
		assert.Equal(t, "data", product.CategoryName)
	}
}

func TestBrowseProductsByOperator(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	products, err := svc.BrowseProducts(ctx, FilterAll, "atom")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, product := range products {
		assert.Equal(t, "atom", product.OperatorName)
	}
}

func TestBrowseProductsCombinedFilters(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	products, err := svc.BrowseProducts(ctx, "data", "mpt")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "MPT 5GB", products[0].Name)

	none, err := svc.BrowseProducts(ctx, "minutes", "mpt")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListCategoriesAndOperators(t *testing.T) {
	svc := newTestCatalogService()
	ctx := context.Background()

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	operators, err := svc.ListOperators(ctx)
	require.NoError(t, err)
	assert.Len(t, operators, 2)
}
