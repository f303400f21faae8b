package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/service"
)

type ItemHandler struct {
	items service.ItemService
}

func NewItemHandler(items service.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/list-items", h.Create)
	g.PATCH("/list-items/:id", h.Update)
	g.DELETE("/list-items/:id", h.Delete)
}

// Create adds a manual item to a list.
// @Summary Add an item
// @Tags items
// @Accept json
// @Produce json
// @Param item body api.CreateItemRequest true "Item"
// @Success 201 {object} api.Item
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /list-items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req api.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	listID, err := api.ParseID(req.ListID)
	if err != nil {
		return fieldError(c, "listId", "must be a numeric id")
	}
	categoryID, err := api.ParseID(req.CategoryID)
	if err != nil {
		return fieldError(c, "categoryId", "must be a numeric id")
	}
	if problem := validateName(req.Name, service.MaxItemNameLength); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	if req.Quantity <= 0 {
		return fieldError(c, "quantity", "must be greater than 0")
	}

	item, err := h.items.Add(c.Request().Context(), ownerID(c), model.NewListItem{
		ListID:     listID,
		CategoryID: categoryID,
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Source:     model.SourceManual,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, api.FromItem(item))
}

// Update changes a subset of an item's fields.
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body api.UpdateItemRequest true "Fields to change"
// @Success 200 {object} api.Item
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /list-items/{id} [patch]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	var req api.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	patch := req.ToPatch()
	if problem := validatePatch(patch); problem != nil {
		return fieldError(c, problem.field, problem.message)
	}
	item, err := h.items.Update(c.Request().Context(), ownerID(c), id, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, api.FromItem(item))
}

// Delete removes an item.
// @Summary Delete an item
// @Tags items
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /list-items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fieldError(c, "id", "must be a numeric id")
	}
	if err := h.items.Delete(c.Request().Context(), ownerID(c), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
