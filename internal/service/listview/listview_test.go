package listview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/service/listview"
)

var categories = []model.Category{
	{ID: 1, Name: "nabiał"},
	{ID: 2, Name: "warzywa"},
	{ID: 8, Name: "inne"},
}

func item(id, categoryID int64, name string) model.ListItem {
	return model.ListItem{ID: id, CategoryID: categoryID, Name: name, Quantity: 1}
}

func TestProject_GroupsInCategoryOrder(t *testing.T) {
	items := []model.ListItem{
		item(1, 2, "marchew"),
		item(2, 1, "mleko"),
		item(3, 2, "cebula"),
	}

	views := listview.Project(items, categories)
	require.Len(t, views, 2)
	require.Equal(t, "nabiał", views[0].Category.Name)
	require.Equal(t, "warzywa", views[1].Category.Name)
	require.Equal(t, []string{"marchew", "cebula"}, []string{views[1].Items[0].Name, views[1].Items[1].Name})
}

func TestProject_OmitsEmptyCategories(t *testing.T) {
	views := listview.Project([]model.ListItem{item(1, 8, "woda")}, categories)
	require.Len(t, views, 1)
	require.Equal(t, int64(8), views[0].Category.ID)
}

func TestProject_Empty(t *testing.T) {
	views := listview.Project(nil, categories)
	require.NotNil(t, views)
	require.Empty(t, views)
}

func TestProject_UnknownCategoryKeptAtEnd(t *testing.T) {
	items := []model.ListItem{
		item(1, 99, "x"),
		item(2, 1, "mleko"),
		item(3, 77, "y"),
		item(4, 99, "z"),
	}

	views := listview.Project(items, categories)
	require.Len(t, views, 3)
	require.Equal(t, "nabiał", views[0].Category.Name)
	require.Equal(t, model.Category{ID: 99}, views[1].Category)
	require.Len(t, views[1].Items, 2)
	require.Equal(t, model.Category{ID: 77}, views[2].Category)
}

func TestProject_ConservesItemCount(t *testing.T) {
	for n := 0; n < 50; n++ {
		items := make([]model.ListItem, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, item(int64(i+1), int64(i%11), "p"))
		}
		require.Equal(t, n, listview.Count(listview.Project(items, categories)))
	}
}

func TestToListView(t *testing.T) {
	list := model.ShoppingListWithItems{
		ShoppingList: model.ShoppingList{ID: 5, Name: "weekend"},
		Items:        []model.ListItem{item(1, 1, "mleko")},
	}

	view := listview.ToListView(list, categories)
	require.Equal(t, int64(5), view.ID)
	require.Equal(t, "weekend", view.Name)
	require.Len(t, view.GroupedItems, 1)
}
