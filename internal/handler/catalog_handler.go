package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/service"
)

type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/categories", h.Categories)
	g.GET("/products/search", h.SearchProducts)
}

// Categories returns the category taxonomy.
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {array} api.Category
// @Security BearerAuth
// @Router /categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]api.Category, 0, len(categories))
	for _, cat := range categories {
		response = append(response, api.FromCategory(cat))
	}
	return c.JSON(http.StatusOK, response)
}

// SearchProducts suggests product names.
// @Summary Search popular products
// @Tags catalog
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} api.Product
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /products/search [get]
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	q := c.QueryParam("q")
	if strings.TrimSpace(q) == "" {
		return fieldError(c, "q", "search query is required")
	}
	products, err := h.catalog.SearchProducts(c.Request().Context(), q)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]api.Product, 0, len(products))
	for _, p := range products {
		response = append(response, api.FromProduct(p))
	}
	return c.JSON(http.StatusOK, response)
}
