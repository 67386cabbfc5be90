package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Order service errors
var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductInactive     = errors.New("product is not available")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo   repositories.OrderRepository
	catalogRepo repositories.CatalogRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repositories.OrderRepository,
	catalogRepo repositories.CatalogRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
	}
}

// PurchaseInput represents a product purchase
type PurchaseInput struct {
	ProductID   uint   `json:"product_id" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// Purchase buys a product with credits. The credit price is captured
// from the product at order time; the repository debits the balance
// and inserts the order atomically, rejecting insufficient balances
// and banned accounts.
func (s *OrderService) Purchase(ctx context.Context, userID uint, input *PurchaseInput) (*models.Order, error) {
	phone := strings.TrimSpace(input.PhoneNumber)
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	product, err := s.catalogRepo.GetProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if !product.IsActive {
		return nil, ErrProductInactive
	}

	order := &models.Order{
		UserID:       userID,
		ProductID:    product.ID,
		PhoneNumber:  phone,
		PriceCredits: product.PriceCredits,
		Status:       models.OrderStatusPending,
	}

	if err := s.orderRepo.Purchase(ctx, order); err != nil {
		if errors.Is(err, repositories.ErrInsufficientCredits) {
			return nil, ErrInsufficientCredits
		}
		return nil, err
	}

	order.Product = product

	log.Printf("✅ Order #%d created: %s for %s (%.2f credits, user %d)",
		order.ID, product.Name, phone, order.PriceCredits, userID)

	return order, nil
}

// ListMyOrders lists the caller's orders newest first with product,
// operator and category metadata
func (s *OrderService) ListMyOrders(ctx context.Context, userID uint) ([]*models.OrderResponse, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, order.ToResponse())
	}

	return responses, nil
}

// ListOrdersInput represents admin list input
type ListOrdersInput struct {
	Page  int
	Limit int
}

// ListOrdersOutput represents admin list output
type ListOrdersOutput struct {
	Orders     []*models.OrderResponse `json:"orders"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	Limit      int                     `json:"limit"`
	TotalPages int                     `json:"total_pages"`
}

// ListOrders lists all orders for the admin dashboard
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*ListOrdersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit
	orders, total, err := s.orderRepo.List(ctx, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, order.ToResponse())
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListOrdersOutput{
		Orders:     responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus updates one order's status and admin notes (admin).
// The status must belong to the canonical closed set.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status, notes string) error {
	if !models.IsValidOrderStatus(status) {
		return ErrInvalidOrderStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status, notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	log.Printf("✅ Order #%d status updated: %s", orderID, status)
	return nil
}
