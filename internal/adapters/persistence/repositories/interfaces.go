package repositories

import (
	"context"

	"shwe-topup/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	SetRole(ctx context.Context, id uint, role string) error
	SetBanned(ctx context.Context, id uint, banned bool) error
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// CatalogRepository defines read access to the catalog reference tables
type CatalogRepository interface {
	ListActiveProducts(ctx context.Context) ([]*models.Product, error)
	ListActiveCategories(ctx context.Context) ([]*models.Category, error)
	ListActiveOperators(ctx context.Context) ([]*models.Operator, error)
	GetProductByID(ctx context.Context, id uint) (*models.Product, error)
}

// CreditRequestRepository defines credit request repository interface.
// Resolve performs the status transition and, for approvals, the owner
// balance increment in a single guarded transaction.
type CreditRequestRepository interface {
	Create(ctx context.Context, request *models.CreditRequest) error
	GetByID(ctx context.Context, id uint) (*models.CreditRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.CreditRequest, error)
	List(ctx context.Context, status string, offset, limit int) ([]*models.CreditRequest, int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Resolve(ctx context.Context, id uint, status, notes string) error
}

// OrderRepository defines order repository interface. Purchase debits
// the buyer's balance and inserts the order in a single guarded
// transaction.
type OrderRepository interface {
	Purchase(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint, limit int) ([]*models.Order, error)
	List(ctx context.Context, offset, limit int) ([]*models.Order, int64, error)
	UpdateStatus(ctx context.Context, id uint, status, notes string) error
}
