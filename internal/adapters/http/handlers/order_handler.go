package handlers

import (
	"errors"
	"strconv"

	"shwe-topup/internal/core/services"
	"shwe-topup/internal/pkg/pagination"
	"shwe-topup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderService *services.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Purchase buys a product with credits
// @Summary Purchase product
// @Description Buy a product with credits for the given phone number
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.PurchaseInput true "Purchase data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 402 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders [post]
func (h *OrderHandler) Purchase(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.PurchaseInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.ProductID == 0 {
		return response.BadRequest(c, "Product ID is required")
	}

	order, err := h.orderService.Purchase(c.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPhoneRequired):
			return response.BadRequest(c, "Phone number is required")
		case errors.Is(err, services.ErrProductNotFound):
			return response.NotFound(c, "Product not found")
		case errors.Is(err, services.ErrProductInactive):
			return response.BadRequest(c, "Product is not available")
		case errors.Is(err, services.ErrInsufficientCredits):
			return response.UnprocessableEntity(c, "Insufficient credits")
		default:
			return response.InternalServerError(c, "Failed to create order")
		}
	}

	return response.Created(c, "Order created successfully", order.ToResponse())
}

// ListMyOrders lists the caller's orders
// @Summary List my orders
// @Description List the authenticated user's orders, newest first
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /orders/my [get]
func (h *OrderHandler) ListMyOrders(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	orders, err := h.orderService.ListMyOrders(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list orders")
	}

	return response.Success(c, "Orders retrieved successfully", fiber.Map{
		"orders": orders,
	})
}

// ListOrders lists all orders (admin)
// @Summary List orders
// @Description List all orders with pagination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	result, err := h.orderService.ListOrders(c.Context(), &services.ListOrdersInput{
		Page:  params.Page,
		Limit: params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list orders")
	}

	return response.Success(c, "Orders retrieved successfully", result)
}

// UpdateStatusRequest represents order status update body
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// UpdateStatus updates an order's status (admin)
// @Summary Update order status
// @Description Move an order between pending, processing, completed and failed
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param body body UpdateStatusRequest true "New status and optional notes"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid order ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.orderService.UpdateStatus(c.Context(), uint(id), req.Status, req.Notes); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrderStatus):
			return response.BadRequest(c, "Invalid order status")
		case errors.Is(err, services.ErrOrderNotFound):
			return response.NotFound(c, "Order not found")
		default:
			return response.InternalServerError(c, "Failed to update order status")
		}
	}

	return response.Success(c, "Order status updated successfully", nil)
}
