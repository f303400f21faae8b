package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/identity"
)

func parseIDParam(c echo.Context, name string) (int64, error) {
	return api.ParseID(c.Param(name))
}

// ownerID returns the authenticated user, or "" which services reject as unauthenticated.
func ownerID(c echo.Context) string {
	id, _ := identity.UserID(c.Request().Context())
	return id
}
