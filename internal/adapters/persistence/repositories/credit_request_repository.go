package repositories

import (
	"context"
	"errors"

	"shwe-topup/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ErrRequestAlreadyResolved is returned when resolving a credit request
// that already reached a terminal state. A duplicate approval (double
// click, concurrent admin) surfaces as this error instead of crediting
// the balance twice.
var ErrRequestAlreadyResolved = errors.New("credit request already resolved")

// creditRequestRepository implements CreditRequestRepository interface
type creditRequestRepository struct {
	db *gorm.DB
}

// NewCreditRequestRepository creates a new credit request repository
func NewCreditRequestRepository(db *gorm.DB) CreditRequestRepository {
	return &creditRequestRepository{db: db}
}

// Create creates a new credit request
func (r *creditRequestRepository) Create(ctx context.Context, request *models.CreditRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID gets a credit request with its requester preloaded
func (r *creditRequestRepository) GetByID(ctx context.Context, id uint) (*models.CreditRequest, error) {
	var request models.CreditRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListByUser lists a user's credit requests, newest first
func (r *creditRequestRepository) ListByUser(ctx context.Context, userID uint) ([]*models.CreditRequest, error) {
	var requests []*models.CreditRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// List lists credit requests with requester identity preloaded, newest
// first, optionally filtered by status
func (r *creditRequestRepository) List(ctx context.Context, status string, offset, limit int) ([]*models.CreditRequest, int64, error) {
	var requests []*models.CreditRequest
	var total int64

	query := r.db.WithContext(ctx).Model(&models.CreditRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// CountByStatus counts credit requests in a given status
func (r *creditRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CreditRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Resolve transitions a pending request to a terminal status and, for
// approvals, increments the owner's balance by credits_requested. Both
// writes share one transaction; the status guard makes the operation
// idempotent under concurrent resolution.
func (r *creditRequestRepository) Resolve(ctx context.Context, id uint, status, notes string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var request models.CreditRequest
		if err := tx.Where("id = ?", id).First(&request).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"status":      status,
			"admin_notes": nil,
		}
		if notes != "" {
			updates["admin_notes"] = notes
		}

		res := tx.Model(&models.CreditRequest{}).
			Where("id = ? AND status = ?", id, models.CreditStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestAlreadyResolved
		}

		if status == models.CreditStatusApproved {
			if err := tx.Model(&models.User{}).
				Where("id = ?", request.UserID).
				UpdateColumn("credits", gorm.Expr("credits + ?", request.CreditsRequested)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
