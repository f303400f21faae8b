package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/handler"
	apphttp "github.com/ptypek/listic/internal/http"
	"github.com/ptypek/listic/internal/identity"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/repository/testutil"
	"github.com/ptypek/listic/internal/service"
	"github.com/ptypek/listic/internal/service/ai"
)

type noopExtractor struct{}

func (noopExtractor) Extract(_ context.Context, _ []string) ([]ai.ExtractedItem, error) {
	return nil, ai.ErrUnavailable
}

func newRouter(t *testing.T) (http.Handler, *identity.Verifier) {
	t.Helper()
	db := testutil.NewTestDB(t)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	lists := repository.NewListRepository(db)
	items := repository.NewListItemRepository(db)
	categories := repository.NewCategoryRepository(db)
	catalog := service.NewCatalogService(categories, repository.NewProductRepository(db))

	verifier, err := identity.NewVerifier("test-secret")
	require.NoError(t, err)

	e := apphttp.NewRouter(apphttp.Handlers{
		Lists: handler.NewListHandler(
			service.NewListService(lists, items),
			service.NewGenerationService(noopExtractor{}, repository.NewTransactor(db), m),
			catalog,
		),
		Items:    handler.NewItemHandler(service.NewItemService(lists, items, categories, m)),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(lists, items, repository.NewAIFeedbackRepository(db))),
		Catalog:  handler.NewCatalogHandler(catalog),
	}, verifier, reg)
	return e, verifier
}

func serve(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	h, _ := newRouter(t)

	rec := serve(h, http.MethodGet, "/healthz", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_MetricsExposed(t *testing.T) {
	h, verifier := newRouter(t)
	token, err := verifier.Sign("user-1", time.Minute)
	require.NoError(t, err)

	rec := serve(h, http.MethodPost, "/api/v1/lists/generate-from-recipes", token, `{"recipes":["soup"]}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "listic_list_generations_total")
}

func TestRouter_SwaggerDoc(t *testing.T) {
	h, _ := newRouter(t)

	rec := serve(h, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Equal(t, apphttp.APIPrefix, doc.BasePath)
	require.Contains(t, doc.Paths, "/lists/generate-from-recipes")
	require.Contains(t, doc.Paths["/list-items/{id}"], "patch")

	rec = serve(h, http.MethodGet, "/swagger/index.html", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	h, _ := newRouter(t)

	rec := serve(h, http.MethodGet, "/api/v1/lists", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsBadToken(t *testing.T) {
	h, _ := newRouter(t)
	other, err := identity.NewVerifier("other-secret")
	require.NoError(t, err)
	token, err := other.Sign("user-1", time.Minute)
	require.NoError(t, err)

	rec := serve(h, http.MethodGet, "/api/v1/lists", token, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedRequestScopedToSubject(t *testing.T) {
	h, verifier := newRouter(t)
	alice, err := verifier.Sign("alice", time.Minute)
	require.NoError(t, err)
	bob, err := verifier.Sign("bob", time.Minute)
	require.NoError(t, err)

	rec := serve(h, http.MethodPost, "/api/v1/lists", alice, `{"name":"Alice's"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/lists/last", bob, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/lists/last", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Alice's")
}
