package repositories

import (
	"context"
	"errors"

	"shwe-topup/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ErrInsufficientCredits is returned when the buyer's balance cannot
// cover the order price, or the buyer account is banned
var ErrInsufficientCredits = errors.New("insufficient credits")

// orderRepository implements OrderRepository interface
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Purchase debits the buyer's balance by the order price and inserts
// the order in one transaction. The balance guard keeps credits from
// going negative under concurrent purchases.
func (r *orderRepository) Purchase(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND is_banned = ? AND credits >= ?", order.UserID, false, order.PriceCredits).
			UpdateColumn("credits", gorm.Expr("credits - ?", order.PriceCredits))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientCredits
		}

		return tx.Create(order).Error
	})
}

// GetByID gets an order with its relations preloaded
func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Preload("Product.Operator").
		Preload("Product.Category").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByUser lists a user's orders newest first with product, operator
// and category metadata. limit <= 0 means no limit.
func (r *orderRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*models.Order, error) {
	var orders []*models.Order
	query := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Operator").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// List lists all orders newest first with requester and product
// preloaded, paginated
func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]*models.Order, int64, error) {
	var orders []*models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// UpdateStatus updates one order's status and admin notes
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status, notes string) error {
	updates := map[string]interface{}{
		"status":      status,
		"admin_notes": nil,
	}
	if notes != "" {
		updates["admin_notes"] = notes
	}

	res := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
