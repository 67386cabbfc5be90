package handlers

import (
	"errors"
	"strconv"

	"shwe-topup/internal/adapters/persistence/models"
	"shwe-topup/internal/core/services"
	"shwe-topup/internal/pkg/pagination"
	"shwe-topup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CreditHandler handles credit package and request endpoints
type CreditHandler struct {
	creditService *services.CreditService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *services.CreditService) *CreditHandler {
	return &CreditHandler{creditService: creditService}
}

// ListPackages returns the preset credit packages
// @Summary List credit packages
// @Description List the preset top-up packages with MMK prices
// @Tags Credits
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /credits/packages [get]
func (h *CreditHandler) ListPackages(c *fiber.Ctx) error {
	return response.Success(c, "Packages retrieved successfully", fiber.Map{
		"packages":        h.creditService.Packages(),
		"credit_rate_mmk": models.CreditRateMMK,
	})
}

// CreateRequest submits a new credit request
// @Summary Buy credits
// @Description Submit a credit request with payment proof for admin review
// @Tags Credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateRequestInput true "Credit request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /credits/requests [post]
func (h *CreditHandler) CreateRequest(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.CreateRequestInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	request, err := h.creditService.CreateRequest(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCreditsAmount):
			return response.BadRequest(c, "Credits amount must be greater than zero")
		case errors.Is(err, services.ErrInvalidPaymentMethod):
			return response.BadRequest(c, "Payment method must be kpay or wavepay")
		case errors.Is(err, services.ErrProofRequired):
			return response.BadRequest(c, "Payment proof is required")
		default:
			return response.InternalServerError(c, "Failed to create credit request")
		}
	}

	return response.Created(c, "Credit request submitted successfully", request.ToResponse())
}

// ListMyRequests lists the caller's credit requests
// @Summary List my credit requests
// @Description List the authenticated user's credit requests, newest first
// @Tags Credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /credits/requests [get]
func (h *CreditHandler) ListMyRequests(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requests, err := h.creditService.ListMyRequests(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list credit requests")
	}

	responses := make([]*models.CreditRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, request.ToResponse())
	}

	return response.Success(c, "Credit requests retrieved successfully", fiber.Map{
		"requests": responses,
	})
}

// ListRequests lists credit requests for admins
// @Summary List credit requests
// @Description List credit requests with status filter and pagination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (pending, approved, denied, all)" default(all)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/credit-requests [get]
func (h *CreditHandler) ListRequests(c *fiber.Ctx) error {
	status := c.Query("status", services.FilterAll)
	if status == services.FilterAll {
		status = ""
	}
	params := pagination.GetParams(c)

	result, err := h.creditService.ListRequests(c.Context(), &services.ListRequestsInput{
		Status: status,
		Page:   params.Page,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list credit requests")
	}

	return response.Success(c, "Credit requests retrieved successfully", result)
}

// ResolveRequestBody carries optional admin notes on approve/deny
type ResolveRequestBody struct {
	Notes string `json:"notes"`
}

// ApproveRequest approves a pending credit request (admin)
// @Summary Approve credit request
// @Description Approve a pending request and credit the owner's balance
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body ResolveRequestBody false "Admin notes"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/credit-requests/{id}/approve [put]
func (h *CreditHandler) ApproveRequest(c *fiber.Ctx) error {
	return h.resolveRequest(c, models.CreditStatusApproved)
}

// DenyRequest denies a pending credit request (admin)
// @Summary Deny credit request
// @Description Deny a pending request without touching the balance
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body ResolveRequestBody false "Admin notes"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/credit-requests/{id}/deny [put]
func (h *CreditHandler) DenyRequest(c *fiber.Ctx) error {
	return h.resolveRequest(c, models.CreditStatusDenied)
}

func (h *CreditHandler) resolveRequest(c *fiber.Ctx, status string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid request ID")
	}

	var body ResolveRequestBody
	_ = c.BodyParser(&body)

	if status == models.CreditStatusApproved {
		err = h.creditService.Approve(c.Context(), uint(id), body.Notes)
	} else {
		err = h.creditService.Deny(c.Context(), uint(id), body.Notes)
	}
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRequestNotFound):
			return response.NotFound(c, "Credit request not found")
		case errors.Is(err, services.ErrAlreadyResolved):
			return response.Conflict(c, "Credit request already resolved")
		default:
			return response.InternalServerError(c, "Failed to resolve credit request")
		}
	}

	return response.Success(c, "Credit request "+status, nil)
}
