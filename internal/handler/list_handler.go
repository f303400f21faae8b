package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/service"
	"github.com/ptypek/listic/internal/service/listview"
)

type ListHandler struct {
	lists      service.ListService
	generation service.GenerationService
	catalog    service.CatalogService
}

func NewListHandler(lists service.ListService, generation service.GenerationService, catalog service.CatalogService) *ListHandler {
	return &ListHandler{lists: lists, generation: generation, catalog: catalog}
}

func (h *ListHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/lists", h.Create)
	g.GET("/lists", h.List)
	g.GET("/lists/last", h.GetLast)
	g.POST("/lists/generate-from-recipes", h.Generate)
	g.GET("/lists/:id", h.Get)
	g.GET("/lists/:id/view", h.View)
	g.PATCH("/lists/:id", h.Rename)
	g.DELETE("/lists/:id", h.Delete)
}

// Create creates an empty list.
// @Summary Create a list
// @Tags lists
// @Accept json
// @Produce json
// @Param list body api.CreateListRequest true "List creation request"
// @Success 201 {object} api.List
// @Failure 400 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists [post]
func (h *ListHandler) Create(c echo.Context) error {
	var req api.CreateListRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if problem := validateName(req.Name, service.MaxListNameLength); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	list, err := h.lists.Create(c.Request().Context(), ownerID(c), req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, api.FromList(list))
}

// List returns the caller's lists.
// @Summary List lists
// @Tags lists
// @Produce json
// @Param sort query string false "created_at, name or updated_at"
// @Param order query string false "asc or desc"
// @Success 200 {array} api.List
// @Security BearerAuth
// @Router /lists [get]
func (h *ListHandler) List(c echo.Context) error {
	sort, order := c.QueryParam("sort"), c.QueryParam("order")
	if problem := validateSort(sort, order); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	lists, err := h.lists.List(c.Request().Context(), ownerID(c), model.ListSort(sort), model.SortOrder(order))
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]api.List, 0, len(lists))
	for _, l := range lists {
		response = append(response, api.FromList(l))
	}
	return c.JSON(http.StatusOK, response)
}

// GetLast returns the most recently created list with its items.
// @Summary Get last list
// @Tags lists
// @Produce json
// @Success 200 {object} api.ListWithItems
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/last [get]
func (h *ListHandler) GetLast(c echo.Context) error {
	list, err := h.lists.GetLast(c.Request().Context(), ownerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, api.FromListWithItems(list))
}

// Get returns one list with its items.
// @Summary Get a list
// @Tags lists
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} api.ListWithItems
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/{id} [get]
func (h *ListHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	list, err := h.lists.Get(c.Request().Context(), ownerID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, api.FromListWithItems(list))
}

// View returns one list with items grouped by category.
// @Summary Get a grouped list
// @Tags lists
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} api.ListView
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/{id}/view [get]
func (h *ListHandler) View(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	ctx := c.Request().Context()
	list, err := h.lists.Get(ctx, ownerID(c), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, api.FromListView(listview.ToListView(list, categories)))
}

// Rename changes the name of a list.
// @Summary Rename a list
// @Tags lists
// @Accept json
// @Produce json
// @Param id path string true "List ID"
// @Param list body api.UpdateListRequest true "New name"
// @Success 200 {object} api.List
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/{id} [patch]
func (h *ListHandler) Rename(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	var req api.UpdateListRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if problem := validateName(req.Name, service.MaxListNameLength); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	list, err := h.lists.Rename(c.Request().Context(), ownerID(c), id, req.Name)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, api.FromList(list))
}

// Delete removes a list and its items.
// @Summary Delete a list
// @Tags lists
// @Param id path string true "List ID"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/{id} [delete]
func (h *ListHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	if err := h.lists.Delete(c.Request().Context(), ownerID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Generate builds a list from recipe texts.
// @Summary Generate a list from recipes
// @Tags lists
// @Accept json
// @Produce json
// @Param request body api.GenerateListRequest true "Recipes"
// @Success 201 {object} api.ListWithItems
// @Failure 400 {object} api.ErrorResponse
// @Failure 502 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /lists/generate-from-recipes [post]
func (h *ListHandler) Generate(c echo.Context) error {
	var req api.GenerateListRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if problem := validateRecipes(req.Recipes); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	if strings.TrimSpace(req.ListName) != "" {
		if problem := validateName(req.ListName, service.MaxListNameLength); problem != nil {
			return fieldError(c, "listName", problem.message)
		}
	}
	list, err := h.generation.Generate(c.Request().Context(), ownerID(c), req.ListName, req.Recipes)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, api.FromListWithItems(list))
}
