package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/identity"
	"github.com/ptypek/listic/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			args := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			}
			if user, ok := identity.UserID(req.Context()); ok {
				args = append(args, "user_id", user)
			}

			switch {
			case status >= 500:
				logger.Error("http request", args...)
			case status >= 400:
				logger.Warn("http request", args...)
			default:
				logger.Debug("http request", args...)
			}
			return nil
		}
	}
}

// JWTAuthMiddleware validates the bearer token and stores its subject as the
// request's user ID.
func JWTAuthMiddleware(verifier *identity.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			token := bearerToken(req.Header.Get(echo.HeaderAuthorization))
			if token == "" {
				logger.Warn("auth missing", "module", "http", "action", "request", "resource", "auth", "result", "failed",
					"method", req.Method, "path", req.URL.Path, "remote_ip", c.RealIP())
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing authentication"})
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("auth invalid", "module", "http", "action", "request", "resource", "auth", "result", "failed",
					"method", req.Method, "path", req.URL.Path, "remote_ip", c.RealIP())
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			}

			c.SetRequest(req.WithContext(identity.WithUserID(req.Context(), userID)))
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
