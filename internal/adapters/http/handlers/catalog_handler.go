package handlers

import (
	"shwe-topup/internal/core/services"
	"shwe-topup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles product browsing endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts lists active products with optional filters
// @Summary List products
// @Description List active products filtered by category and operator names. "all" or empty means no filter.
// @Tags Catalog
// @Accept json
// @Produce json
// @Param category query string false "Category name filter" default(all)
// @Param operator query string false "Operator name filter" default(all)
// @Success 200 {object} response.Response
// @Router /catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	category := c.Query("category", services.FilterAll)
	operator := c.Query("operator", services.FilterAll)

	products, err := h.catalogService.BrowseProducts(c.Context(), category, operator)
	if err != nil {
		return response.InternalServerError(c, "Failed to list products")
	}

	return response.Success(c, "Products retrieved successfully", fiber.Map{
		"products": products,
		"count":    len(products),
	})
}

// ListCategories lists active categories
// @Summary List categories
// @Description List active product categories in display order
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}

	return response.Success(c, "Categories retrieved successfully", fiber.Map{
		"categories": categories,
	})
}

// ListOperators lists active operators
// @Summary List operators
// @Description List active telecom operators
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /catalog/operators [get]
func (h *CatalogHandler) ListOperators(c *fiber.Ctx) error {
	operators, err := h.catalogService.ListOperators(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list operators")
	}

	return response.Success(c, "Operators retrieved successfully", fiber.Map{
		"operators": operators,
	})
}
