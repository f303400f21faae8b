package api_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
)

func TestParseID(t *testing.T) {
	id, err := api.ParseID("1790000000000000001")
	require.NoError(t, err)
	require.Equal(t, int64(1790000000000000001), id)

	for _, bad := range []string{"", "abc", "0", "-5", "1.5"} {
		_, err := api.ParseID(bad)
		require.Error(t, err, bad)
	}
}

func TestItem_ToModelKeepsFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 123, time.UTC)
	in := model.ListItem{
		ID: 1, ListID: 2, CategoryID: 3, Name: "mleko", Quantity: 2.5, Unit: "l",
		IsChecked: true, Source: model.SourceAI, CreatedAt: now, UpdatedAt: now,
	}

	wire := api.FromItem(in)
	require.Equal(t, "1", wire.ID)
	require.Equal(t, "ai", wire.Source)

	out, err := wire.ToModel()
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestItem_ToModelRejectsBadID(t *testing.T) {
	_, err := api.Item{ID: "x", ListID: "1", CategoryID: "1"}.ToModel()
	require.Error(t, err)
}

func TestFromListView(t *testing.T) {
	view := model.ListView{
		ID:   9,
		Name: "weekend",
		GroupedItems: []model.CategoryView{
			{Category: model.Category{ID: 1, Name: "nabiał"}, Items: []model.ListItem{{ID: 4, ListID: 9, CategoryID: 1}}},
		},
	}

	wire := api.FromListView(view)
	require.Equal(t, "9", wire.ID)
	require.Len(t, wire.GroupedItems, 1)
	require.Equal(t, "nabiał", wire.GroupedItems[0].Category.Name)
	require.Equal(t, "4", wire.GroupedItems[0].Items[0].ID)
}

func TestUpdateItemRequest_Patch(t *testing.T) {
	q := 3.0
	req := api.FromPatch(model.ListItemPatch{Quantity: &q})

	patch := req.ToPatch()
	require.Nil(t, patch.Name)
	require.Equal(t, 3.0, *patch.Quantity)
}
