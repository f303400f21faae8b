package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository/testutil"
)

func newItem(listID int64, name string, categoryID int64, source model.ItemSource) model.NewListItem {
	return model.NewListItem{ListID: listID, CategoryID: categoryID, Name: name, Quantity: 1, Source: source}
}

func TestItemHandler_Create(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})
	listID := api.FormatID(testutil.SeedList(t, s.db, "Groceries", testUser))

	body := `{"listId":"` + listID + `","categoryId":"1","name":"Milk","quantity":2,"unit":"l"}`
	rec := s.do(t, http.MethodPost, "/list-items", body, testUser)
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decode[api.Item](t, rec)
	require.Equal(t, "Milk", item.Name)
	require.Equal(t, 2.0, item.Quantity)
	require.Equal(t, "manual", item.Source)
	require.False(t, item.IsChecked)
}

func TestItemHandler_Create_Validation(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})
	listID := api.FormatID(testutil.SeedList(t, s.db, "Groceries", testUser))

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"bad list id", `{"listId":"x","categoryId":"1","name":"Milk","quantity":1}`, "listId"},
		{"bad category id", `{"listId":"` + listID + `","categoryId":"","name":"Milk","quantity":1}`, "categoryId"},
		{"unknown category", `{"listId":"` + listID + `","categoryId":"999","name":"Milk","quantity":1}`, "categoryId"},
		{"empty name", `{"listId":"` + listID + `","categoryId":"1","name":" ","quantity":1}`, "name"},
		{"zero quantity", `{"listId":"` + listID + `","categoryId":"1","name":"Milk","quantity":0}`, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/list-items", tc.body, testUser)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, tc.field, decode[api.ErrorResponse](t, rec).Field)
		})
	}
	require.Equal(t, 0, testutil.CountRows(t, s.db, "list_items"))
}

func TestItemHandler_Create_ForeignList(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})
	listID := api.FormatID(testutil.SeedList(t, s.db, "Private", "user-2"))

	body := `{"listId":"` + listID + `","categoryId":"1","name":"Milk","quantity":1}`
	rec := s.do(t, http.MethodPost, "/list-items", body, testUser)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestItemHandler_UpdateAndDelete(t *testing.T) {
	s := newTestServer(t, &stubExtractor{})
	listID := testutil.SeedList(t, s.db, "Groceries", testUser)
	id := api.FormatID(testutil.SeedItem(t, s.db, newItem(listID, "Milk", testutil.CategoryDairy, model.SourceManual)))

	rec := s.do(t, http.MethodPatch, "/list-items/"+id, `{"isChecked":true}`, testUser)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decode[api.Item](t, rec)
	require.True(t, item.IsChecked)
	require.Equal(t, "Milk", item.Name)

	rec = s.do(t, http.MethodPatch, "/list-items/"+id, `{}`, testUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPatch, "/list-items/"+id, `{"quantity":-1}`, testUser)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "quantity", decode[api.ErrorResponse](t, rec).Field)

	rec = s.do(t, http.MethodDelete, "/list-items/"+id, "", testUser)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodDelete, "/list-items/"+id, "", testUser)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
