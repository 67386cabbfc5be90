package services

import (
	"context"
	"errors"
	"log"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Credit service errors
var (
	ErrRequestNotFound      = errors.New("credit request not found")
	ErrAlreadyResolved      = errors.New("credit request already resolved")
	ErrInvalidCreditsAmount = errors.New("credits amount must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrProofRequired        = errors.New("payment proof is required")
	ErrInvalidDecision      = errors.New("invalid decision")
)

// CreditPackage is a preset top-up package offered to the buy-credits form
type CreditPackage struct {
	Credits   float64 `json:"credits"`
	AmountMMK float64 `json:"amount_mmk"`
	Popular   bool    `json:"popular"`
}

// presetPackages mirrors the storefront's fixed package list
var presetPackages = []CreditPackage{
	{Credits: 100, AmountMMK: 10000},
	{Credits: 250, AmountMMK: 25000},
	{Credits: 500, AmountMMK: 50000, Popular: true},
	{Credits: 1000, AmountMMK: 100000},
	{Credits: 2500, AmountMMK: 250000},
}

// CreditService handles credit request business logic
type CreditService struct {
	requestRepo repositories.CreditRequestRepository
}

// NewCreditService creates a new credit service
func NewCreditService(requestRepo repositories.CreditRequestRepository) *CreditService {
	return &CreditService{requestRepo: requestRepo}
}

// Packages returns the preset credit packages
func (s *CreditService) Packages() []CreditPackage {
	return presetPackages
}

// CreateRequestInput represents a buy-credits submission
type CreateRequestInput struct {
	Credits         float64 `json:"credits" validate:"required,gt=0"`
	PaymentMethod   string  `json:"payment_method" validate:"required"`
	PaymentProofURL string  `json:"payment_proof_url" validate:"required"`
}

// CreateRequest records a pending credit request. The MMK amount is
// derived server-side at the fixed rate; clients never set it.
func (s *CreditService) CreateRequest(ctx context.Context, userID uint, input *CreateRequestInput) (*models.CreditRequest, error) {
	if input.Credits <= 0 {
		return nil, ErrInvalidCreditsAmount
	}
	if !models.IsValidPaymentMethod(input.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if input.PaymentProofURL == "" {
		return nil, ErrProofRequired
	}

	request := &models.CreditRequest{
		UserID:           userID,
		CreditsRequested: input.Credits,
		AmountMMK:        input.Credits * models.CreditRateMMK,
		PaymentMethod:    input.PaymentMethod,
		PaymentProofURL:  input.PaymentProofURL,
		Status:           models.CreditStatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	log.Printf("✅ Credit request #%d created: %.2f credits via %s (user %d)",
		request.ID, request.CreditsRequested, request.PaymentMethod, userID)

	return request, nil
}

// ListMyRequests lists the caller's credit requests, newest first
func (s *CreditService) ListMyRequests(ctx context.Context, userID uint) ([]*models.CreditRequest, error) {
	return s.requestRepo.ListByUser(ctx, userID)
}

// ListRequestsInput represents admin list input
type ListRequestsInput struct {
	Status string
	Page   int
	Limit  int
}

// ListRequestsOutput represents admin list output
type ListRequestsOutput struct {
	Requests   []*models.CreditRequestResponse `json:"requests"`
	Total      int64                           `json:"total"`
	Page       int                             `json:"page"`
	Limit      int                             `json:"limit"`
	TotalPages int                             `json:"total_pages"`
}

// ListRequests lists credit requests for the admin dashboard
func (s *CreditService) ListRequests(ctx context.Context, input *ListRequestsInput) (*ListRequestsOutput, error) {
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
	requests, total, err := s.requestRepo.List(ctx, input.Status, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CreditRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, request.ToResponse())
	}

	totalPages := int(total) / input.Limit
	if int(total)%input.Limit > 0 {
		totalPages++
	}

	return &ListRequestsOutput{
		Requests:   responses,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages,
	}, nil
}

// Approve resolves a pending request as approved and credits the
// owner's balance by credits_requested. The repository runs both
// writes in one guarded transaction, so a repeated approval returns
// ErrAlreadyResolved instead of double-crediting.
func (s *CreditService) Approve(ctx context.Context, requestID uint, notes string) error {
	return s.resolve(ctx, requestID, models.CreditStatusApproved, notes)
}

// Deny resolves a pending request as denied; the balance is untouched
func (s *CreditService) Deny(ctx context.Context, requestID uint, notes string) error {
	return s.resolve(ctx, requestID, models.CreditStatusDenied, notes)
}

func (s *CreditService) resolve(ctx context.Context, requestID uint, status, notes string) error {
	err := s.requestRepo.Resolve(ctx, requestID, status, notes)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrRequestNotFound
		case errors.Is(err, repositories.ErrRequestAlreadyResolved):
			return ErrAlreadyResolved
		default:
			return err
		}
	}

	log.Printf("✅ Credit request #%d resolved: %s", requestID, status)
	return nil
}
