package services

import (
	"context"
	"errors"
	"time"

	"shwe-topup/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// DashboardService handles aggregated read views: the authenticated
// home shell and the admin dashboard
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ============================================================
// Home (authenticated landing shell)
// ============================================================

// HomeData represents the landing page payload
type HomeData struct {
	User            *models.UserResponse    `json:"user"`
	IsAdmin         bool                    `json:"is_admin"`
	PendingRequests int64                   `json:"pending_requests"`
	RecentOrders    []*models.OrderResponse `json:"recent_orders"`
}

// GetHome returns the aggregated landing payload for a user. The admin
// flag derives from the stored role only.
func (s *DashboardService) GetHome(ctx context.Context, userID uint) (*HomeData, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	data := &HomeData{
		User:    user.ToResponse(),
		IsAdmin: user.IsAdmin(),
	}

	s.db.WithContext(ctx).Model(&models.CreditRequest{}).
		Where("user_id = ? AND status = ?", userID, models.CreditStatusPending).
		Count(&data.PendingRequests)

	var orders []*models.Order
	s.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Operator").
		Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(5).
		Find(&orders)

	data.RecentOrders = make([]*models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		data.RecentOrders = append(data.RecentOrders, order.ToResponse())
	}

	return data, nil
}

// ============================================================
// Admin Dashboard
// ============================================================

// AdminDashboardData represents admin dashboard data
type AdminDashboardData struct {
	// User statistics
	TotalUsers  int64 `json:"total_users"`
	TotalAdmins int64 `json:"total_admins"`
	BannedUsers int64 `json:"banned_users"`

	// Credit statistics
	PendingRequests   int64   `json:"pending_requests"`
	ApprovedRequests  int64   `json:"approved_requests"`
	DeniedRequests    int64   `json:"denied_requests"`
	CreditsIssued     float64 `json:"credits_issued"`
	CreditsInWallets  float64 `json:"credits_in_wallets"`
	RequestsThisMonth int64   `json:"requests_this_month"`
	CreditsThisMonth  float64 `json:"credits_this_month"`

	// Order statistics
	TotalOrders      int64 `json:"total_orders"`
	PendingOrders    int64 `json:"pending_orders"`
	ProcessingOrders int64 `json:"processing_orders"`
	CompletedOrders  int64 `json:"completed_orders"`
	FailedOrders     int64 `json:"failed_orders"`

	// Recent activity
	RecentRequests []RequestSummary `json:"recent_requests"`
}

// RequestSummary represents a credit request summary line
type RequestSummary struct {
	ID            uint      `json:"id"`
	UserName      string    `json:"user_name"`
	Credits       float64   `json:"credits"`
	AmountMMK     float64   `json:"amount_mmk"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// GetAdminDashboard returns admin dashboard data
func (s *DashboardService) GetAdminDashboard(ctx context.Context) (*AdminDashboardData, error) {
	data := &AdminDashboardData{}

	// User counts
	s.db.WithContext(ctx).Table("users").Where("deleted_at IS NULL").Count(&data.TotalUsers)
	s.db.WithContext(ctx).Table("users").Where("role = ? AND deleted_at IS NULL", models.RoleAdmin).Count(&data.TotalAdmins)
	s.db.WithContext(ctx).Table("users").Where("is_banned = ? AND deleted_at IS NULL", true).Count(&data.BannedUsers)

	// Credit request counts by status
	s.db.WithContext(ctx).Table("credit_requests").Where("status = ?", models.CreditStatusPending).Count(&data.PendingRequests)
	s.db.WithContext(ctx).Table("credit_requests").Where("status = ?", models.CreditStatusApproved).Count(&data.ApprovedRequests)
	s.db.WithContext(ctx).Table("credit_requests").Where("status = ?", models.CreditStatusDenied).Count(&data.DeniedRequests)

	// Credits issued through approvals and currently held in wallets
	s.db.WithContext(ctx).Table("credit_requests").
		Where("status = ?", models.CreditStatusApproved).
		Select("COALESCE(SUM(credits_requested), 0)").
		Scan(&data.CreditsIssued)

	s.db.WithContext(ctx).Table("users").
		Where("deleted_at IS NULL").
		Select("COALESCE(SUM(credits), 0)").
		Scan(&data.CreditsInWallets)

	// This month statistics
	startOfMonth := time.Now().AddDate(0, 0, -time.Now().Day()+1).Truncate(24 * time.Hour)
	s.db.WithContext(ctx).Table("credit_requests").
		Where("created_at >= ?", startOfMonth).
		Count(&data.RequestsThisMonth)

	s.db.WithContext(ctx).Table("credit_requests").
		Where("created_at >= ? AND status = ?", startOfMonth, models.CreditStatusApproved).
		Select("COALESCE(SUM(credits_requested), 0)").
		Scan(&data.CreditsThisMonth)

	// Order counts by status
	s.db.WithContext(ctx).Table("orders").Count(&data.TotalOrders)
	s.db.WithContext(ctx).Table("orders").Where("status = ?", models.OrderStatusPending).Count(&data.PendingOrders)
	s.db.WithContext(ctx).Table("orders").Where("status = ?", models.OrderStatusProcessing).Count(&data.ProcessingOrders)
	s.db.WithContext(ctx).Table("orders").Where("status = ?", models.OrderStatusCompleted).Count(&data.CompletedOrders)
	s.db.WithContext(ctx).Table("orders").Where("status = ?", models.OrderStatusFailed).Count(&data.FailedOrders)

	// Recent credit requests
	var requests []*models.CreditRequest
	s.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(10).
		Find(&requests)

	data.RecentRequests = make([]RequestSummary, 0, len(requests))
	for _, request := range requests {
		summary := RequestSummary{
			ID:            request.ID,
			Credits:       request.CreditsRequested,
			AmountMMK:     request.AmountMMK,
			PaymentMethod: request.PaymentMethod,
			Status:        request.Status,
			CreatedAt:     request.CreatedAt,
		}
		if request.User != nil {
			summary.UserName = request.User.Name
		}
		data.RecentRequests = append(data.RecentRequests, summary)
	}

	return data, nil
}
