package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/client"
	"github.com/ptypek/listic/internal/handler"
	apphttp "github.com/ptypek/listic/internal/http"
	"github.com/ptypek/listic/internal/identity"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/repository/testutil"
	"github.com/ptypek/listic/internal/service"
	"github.com/ptypek/listic/internal/service/ai"
)

type unusedExtractor struct{}

func (unusedExtractor) Extract(context.Context, []string) ([]ai.ExtractedItem, error) {
	return nil, ai.ErrUnavailable
}

type liveServer struct {
	srv      *httptest.Server
	verifier *identity.Verifier
	listID   int64
	itemID   int64
}

func newLiveServer(t *testing.T) *liveServer {
	t.Helper()
	db := testutil.NewTestDB(t)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	lists := repository.NewListRepository(db)
	items := repository.NewListItemRepository(db)
	categories := repository.NewCategoryRepository(db)
	catalog := service.NewCatalogService(categories, repository.NewProductRepository(db))
	verifier, err := identity.NewVerifier("integration-secret")
	require.NoError(t, err)

	e := apphttp.NewRouter(apphttp.Handlers{
		Lists: handler.NewListHandler(
			service.NewListService(lists, items),
			service.NewGenerationService(unusedExtractor{}, repository.NewTransactor(db), m),
			catalog,
		),
		Items:    handler.NewItemHandler(service.NewItemService(lists, items, categories, m)),
		Feedback: handler.NewFeedbackHandler(service.NewFeedbackService(lists, items, repository.NewAIFeedbackRepository(db))),
		Catalog:  handler.NewCatalogHandler(catalog),
	}, verifier, reg)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	listID := testutil.SeedList(t, db, "Groceries", "user-1")
	itemID := testutil.SeedItem(t, db, model.NewListItem{ListID: listID, CategoryID: testutil.CategoryDairy, Name: "Milk", Quantity: 2, Unit: "l", Source: model.SourceAI})
	return &liveServer{srv: srv, verifier: verifier, listID: listID, itemID: itemID}
}

func (s *liveServer) store(t *testing.T, userID string) *client.HTTPStore {
	t.Helper()
	token, err := s.verifier.Sign(userID, time.Minute)
	require.NoError(t, err)
	return client.NewHTTPStore(s.srv.URL, token, userID, s.srv.Client())
}

func TestHTTPStore_CoordinatorRoundTrip(t *testing.T) {
	live := newLiveServer(t)
	cache := client.NewListCache()
	co := client.NewCoordinator(live.store(t, "user-1"), client.StaticIdentity("user-1"), cache)
	ctx := context.Background()

	list, err := co.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, live.listID, list.ID)
	require.Equal(t, "user-1", list.OwnerID)
	require.Len(t, list.Items, 1)

	added, err := co.AddItem(ctx, model.NewListItem{ListID: live.listID, CategoryID: testutil.CategoryVeg, Name: "Carrot", Quantity: 1, Unit: "kg"})
	require.NoError(t, err)
	require.Equal(t, model.SourceManual, added.Source)

	updated, err := co.UpdateItem(ctx, live.itemID, model.ListItemPatch{IsChecked: ptr(true)})
	require.NoError(t, err)
	require.True(t, updated.IsChecked)

	view, err := co.View(ctx)
	require.NoError(t, err)
	require.Len(t, view.GroupedItems, 2)

	require.NoError(t, co.ReportAIFeedback(ctx, live.itemID))
	require.NoError(t, co.DeleteItem(ctx, added.ID))

	list, err = co.Load(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.True(t, list.Items[0].IsChecked)
}

func TestHTTPStore_MapsStatusErrors(t *testing.T) {
	live := newLiveServer(t)
	ctx := context.Background()

	_, err := live.store(t, "someone-else").GetLastList(ctx)
	require.ErrorIs(t, err, client.ErrNotFound)

	bad := client.NewHTTPStore(live.srv.URL, "not-a-token", "user-1", live.srv.Client())
	_, err = bad.GetCategories(ctx)
	require.ErrorIs(t, err, client.ErrUnauthenticated)

	_, err = live.store(t, "user-1").AddItem(ctx, model.NewListItem{ListID: live.listID, CategoryID: 999, Name: "Tea", Quantity: 1})
	require.ErrorIs(t, err, client.ErrInvalid)
	var statusErr *client.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.Status)
	require.Equal(t, "categoryId", statusErr.Field)
}

func TestHTTPStore_ForeignItemRollsBackAsNotFound(t *testing.T) {
	live := newLiveServer(t)
	co := client.NewCoordinator(live.store(t, "intruder"), client.StaticIdentity("intruder"), client.NewListCache())

	err := co.DeleteItem(context.Background(), live.itemID)
	require.ErrorIs(t, err, client.ErrNotFound)
}
