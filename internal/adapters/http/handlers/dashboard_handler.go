package handlers

import (
	"errors"

	"shwe-topup/internal/core/services"
	"shwe-topup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles home and admin dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetHome returns the home dashboard for the authenticated user
// @Summary Get home dashboard
// @Description Get balance, pending requests and recent orders for the home screen
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard/home [get]
func (h *DashboardHandler) GetHome(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	data, err := h.dashboardService.GetHome(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved successfully", data)
}

// GetAdminDashboard returns aggregate stats for admins
// @Summary Get admin dashboard
// @Description Get user, credit request and order statistics
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/dashboard [get]
func (h *DashboardHandler) GetAdminDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetAdminDashboard(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load admin dashboard")
	}

	return response.Success(c, "Admin dashboard retrieved successfully", data)
}
