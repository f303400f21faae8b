// Package listview groups list items into category buckets for display.
package listview

import "github.com/ptypek/listic/internal/model"

// Project groups items by category. Groups follow the order of categories and
// keep the item order of the input; empty groups are left out. Items whose
// category is not in categories are kept in trailing groups, in the order
// their category ID was first seen, carrying only the ID.
func Project(items []model.ListItem, categories []model.Category) []model.CategoryView {
	byCategory := make(map[int64][]model.ListItem)
	var seen []int64
	for _, item := range items {
		if _, ok := byCategory[item.CategoryID]; !ok {
			seen = append(seen, item.CategoryID)
		}
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	views := make([]model.CategoryView, 0, len(seen))
	known := make(map[int64]bool, len(categories))
	for _, c := range categories {
		if known[c.ID] {
			continue
		}
		known[c.ID] = true
		if group := byCategory[c.ID]; len(group) > 0 {
			views = append(views, model.CategoryView{Category: c, Items: group})
		}
	}
	for _, id := range seen {
		if known[id] {
			continue
		}
		views = append(views, model.CategoryView{Category: model.Category{ID: id}, Items: byCategory[id]})
	}
	return views
}

// ToListView projects a list with its items.
func ToListView(list model.ShoppingListWithItems, categories []model.Category) model.ListView {
	return model.ListView{
		ID:           list.ID,
		Name:         list.Name,
		GroupedItems: Project(list.Items, categories),
	}
}

// Count returns the number of items across all groups.
func Count(views []model.CategoryView) int {
	n := 0
	for _, v := range views {
		n += len(v.Items)
	}
	return n
}
