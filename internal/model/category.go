package model

// Category is one taxonomy bucket used to group items.
type Category struct {
	ID   int64
	Name string
}

// CategoryView is a category with the items of one list that belong to it.
type CategoryView struct {
	Category Category
	Items    []ListItem
}

// ListView is a list with its items grouped for display.
type ListView struct {
	ID           int64
	Name         string
	GroupedItems []CategoryView
}
