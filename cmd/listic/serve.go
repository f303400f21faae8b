package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ptypek/listic/internal/db"
	"github.com/ptypek/listic/internal/handler"
	transport "github.com/ptypek/listic/internal/http"
	"github.com/ptypek/listic/internal/identity"
	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/scheduler"
	"github.com/ptypek/listic/internal/service"
	"github.com/ptypek/listic/internal/service/ai"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runServe(ctx)
	},
}

func runServe(ctx context.Context) error {
	verifier, err := identity.NewVerifier(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("LISTIC_JWT_SECRET: %w", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbConn.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	var provider ai.Provider
	p, err := ai.NewProvider(ctx, ai.Config{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
	})
	if err != nil {
		logger.Warn("extraction provider disabled", "module", "main", "action", "start", "resource", "ai", "result", "failed", "provider", cfg.AI.Provider, "error", err)
	} else {
		provider = p
		logger.Info("extraction provider ready", "module", "main", "action", "start", "resource", "ai", "result", "ok", "provider", p.Name(), "model", cfg.AI.Model)
	}
	if g, ok := provider.(*ai.GeminiProvider); ok {
		defer g.Close()
	}
	extractor := ai.NewExtractor(provider, ai.NewRateLimiter(cfg.AI.RateLimit), service.ExtractionLabels())

	listRepo := repository.NewListRepository(dbConn)
	itemRepo := repository.NewListItemRepository(dbConn)
	categoryRepo := repository.NewCategoryRepository(dbConn)
	feedbackRepo := repository.NewAIFeedbackRepository(dbConn)
	productRepo := repository.NewProductRepository(dbConn)

	listService := service.NewListService(listRepo, itemRepo)
	itemService := service.NewItemService(listRepo, itemRepo, categoryRepo, m)
	generationService := service.NewGenerationService(extractor, repository.NewTransactor(dbConn), m)
	feedbackService := service.NewFeedbackService(listRepo, itemRepo, feedbackRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo)

	router := transport.NewRouter(transport.Handlers{
		Lists:    handler.NewListHandler(listService, generationService, catalogService),
		Items:    handler.NewItemHandler(itemService),
		Feedback: handler.NewFeedbackHandler(feedbackService),
		Catalog:  handler.NewCatalogHandler(catalogService),
	}, verifier, reg)

	maintenance := scheduler.New("database", func(ctx context.Context) error {
		return db.Optimize(ctx, dbConn)
	}, cfg.MaintenanceInterval)
	maintenance.Start()
	defer maintenance.Stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "module", "main", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "module", "main", "action", "stop", "resource", "http", "result", "ok")
		return router.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
