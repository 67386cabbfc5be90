package services

import (
	"context"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"
)

// FilterAll is the sentinel filter value meaning "no constraint"
const FilterAll = "all"

// CatalogService handles product browsing
type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// BrowseProducts returns active products whose joined category and
// operator names match the given filters. Empty or "all" means no
// constraint, as in the storefront's filter dropdowns.
func (s *CatalogService) BrowseProducts(ctx context.Context, category, operator string) ([]*models.ProductResponse, error) {
	products, err := s.catalogRepo.ListActiveProducts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ProductResponse, 0, len(products))
	for _, product := range products {
		if !matchesFilter(product, category, operator) {
			continue
		}
		responses = append(responses, product.ToResponse())
	}

	return responses, nil
}

// matchesFilter applies the category/operator name predicates
func matchesFilter(p *models.Product, category, operator string) bool {
	if category != "" && category != FilterAll {
		if p.Category == nil || p.Category.Name != category {
			return false
		}
	}
	if operator != "" && operator != FilterAll {
		if p.Operator == nil || p.Operator.Name != operator {
			return false
		}
	}
	return true
}

// ListCategories returns the active categories for filter population
func (s *CatalogService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.catalogRepo.ListActiveCategories(ctx)
}

// ListOperators returns the active operators for filter population
func (s *CatalogService) ListOperators(ctx context.Context) ([]*models.Operator, error) {
	return s.catalogRepo.ListActiveOperators(ctx)
}
