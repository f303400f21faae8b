package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/service"
)

type FeedbackHandler struct {
	feedback service.FeedbackService
}

func NewFeedbackHandler(feedback service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/ai-feedback", h.Create)
}

// Create flags an AI-generated item as wrong.
// @Summary Report AI feedback
// @Tags ai
// @Accept json
// @Produce json
// @Param request body api.AIFeedbackRequest true "Item to flag"
// @Success 202 {object} api.AIFeedback
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router /ai-feedback [post]
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req api.AIFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	itemID, err := api.ParseID(req.ListItemID)
	if err != nil {
		return fieldError(c, "listItemId", "must be a numeric id")
	}
	fb, err := h.feedback.Record(c.Request().Context(), ownerID(c), itemID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusAccepted, api.FromAIFeedback(fb))
}
