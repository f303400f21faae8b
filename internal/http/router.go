package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/ptypek/listic/docs"
	"github.com/ptypek/listic/internal/handler"
	"github.com/ptypek/listic/internal/identity"
)

// APIPrefix is the path every authenticated route is mounted under.
const APIPrefix = "/api/v1"

type Handlers struct {
	Lists    *handler.ListHandler
	Items    *handler.ItemHandler
	Feedback *handler.FeedbackHandler
	Catalog  *handler.CatalogHandler
}

func NewRouter(h Handlers, verifier *identity.Verifier, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	g := e.Group(APIPrefix, JWTAuthMiddleware(verifier))
	h.Lists.RegisterRoutes(g)
	h.Items.RegisterRoutes(g)
	h.Feedback.RegisterRoutes(g)
	h.Catalog.RegisterRoutes(g)

	return e
}
