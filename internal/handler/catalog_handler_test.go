package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository/testutil"
)

func TestCatalogHandler_Categories(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})

	rec := s.do(t, http.MethodGet, "/categories", "", testUser)
	require.Equal(t, http.StatusOK, rec.Code)
	categories := decode[[]api.Category](t, rec)
	require.Len(t, categories, 8)
	require.Equal(t, "inne", categories[len(categories)-1].Name)
}

func TestCatalogHandler_SearchProducts(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})

	rec := s.do(t, http.MethodGet, "/products/search?q=mlek", "", testUser)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]api.Product](t, rec)
	require.NotEmpty(t, products)

	rec = s.do(t, http.MethodGet, "/products/search?q=%20", "", testUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "q", decode[api.ErrorResponse](t, rec).Field)
}

func TestFeedbackHandler_Create(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})
	listID := testutil.SeedList(t, s.db, "Generated", testUser)
	aiItem := api.FormatID(testutil.SeedItem(t, s.db, newItem(listID, "Eggs", testutil.CategoryDairy, model.SourceAI)))
	manualItem := api.FormatID(testutil.SeedItem(t, s.db, newItem(listID, "Bread", testutil.CategoryOther, model.SourceManual)))

	rec := s.do(t, http.MethodPost, "/ai-feedback", `{"listItemId":"`+aiItem+`"}`, testUser)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, aiItem, decode[api.AIFeedback](t, rec).ListItemID)
	require.Equal(t, 1, testutil.CountRows(t, s.db, "ai_feedback_log"))

	rec = s.do(t, http.MethodPost, "/ai-feedback", `{"listItemId":"`+manualItem+`"}`, testUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "listItemId", decode[api.ErrorResponse](t, rec).Field)

	rec = s.do(t, http.MethodPost, "/ai-feedback", `{"listItemId":"nope"}`, testUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
