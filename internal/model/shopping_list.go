package model

import "time"

// ShoppingList is a named collection of items owned by one user.
type ShoppingList struct {
	ID        int64
	Name      string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShoppingListWithItems is a list joined with its items in insertion order.
type ShoppingListWithItems struct {
	ShoppingList
	Items []ListItem
}

// Clone returns a deep copy so callers can mutate the result freely.
func (l ShoppingListWithItems) Clone() ShoppingListWithItems {
	out := l
	if l.Items != nil {
		out.Items = make([]ListItem, len(l.Items))
		copy(out.Items, l.Items)
	}
	return out
}

// ListSort is a column lists can be ordered by.
type ListSort string

const (
	SortCreatedAt ListSort = "created_at"
	SortName      ListSort = "name"
	SortUpdatedAt ListSort = "updated_at"
)

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)
