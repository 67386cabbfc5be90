package repositories

import (
	"context"

	"shwe-topup/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// catalogRepository implements CatalogRepository interface
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListActiveProducts lists active products with operator and category
// metadata preloaded, ordered for display
func (r *catalogRepository) ListActiveProducts(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	err := r.db.WithContext(ctx).
		Preload("Operator").
		Preload("Category").
		Where("is_active = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ListActiveCategories lists active categories in sort order
func (r *catalogRepository) ListActiveCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// ListActiveOperators lists active operators by name
func (r *catalogRepository) ListActiveOperators(ctx context.Context) ([]*models.Operator, error) {
	var operators []*models.Operator
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&operators).Error
	if err != nil {
		return nil, err
	}
	return operators, nil
}

// GetProductByID gets a product with its relations
func (r *catalogRepository) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Operator").
		Preload("Category").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}
