package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/service"
)

func writeServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "authentication required"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrExtractionUnavailable):
		logger.Warn("extraction unavailable", "module", "handler", "action", "request", "resource", "ai", "result", "failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "extraction service unavailable"})
	case errors.Is(err, service.ErrExtractionMalformed):
		logger.Warn("extraction malformed", "module", "handler", "action", "request", "resource", "ai", "result", "failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "extraction service returned an unusable response"})
	default:
		logger.Error("request failed", "module", "handler", "action", "request", "resource", "http", "result", "failed", "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, api.ErrorResponse{Error: message})
}

func fieldError(c echo.Context, field, message string) error {
	return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: message, Field: field})
}
