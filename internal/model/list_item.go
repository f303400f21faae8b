package model

import "time"

// ItemSource records how an item was created. It never changes after creation.
type ItemSource string

const (
	SourceManual ItemSource = "manual"
	SourceAI     ItemSource = "ai"
)

type ListItem struct {
	ID         int64
	ListID     int64
	CategoryID int64
	Name       string
	Quantity   float64
	Unit       string
	IsChecked  bool
	Source     ItemSource
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// TempID is set only on optimistic entries that have not been persisted yet.
	TempID string
}

// NewListItem is the data needed to create an item.
type NewListItem struct {
	ListID     int64
	CategoryID int64
	Name       string
	Quantity   float64
	Unit       string
	Source     ItemSource
}

// ListItemPatch carries the fields of an item that may change. Nil fields are left alone.
type ListItemPatch struct {
	Name      *string
	Quantity  *float64
	Unit      *string
	IsChecked *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ListItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil && p.Unit == nil && p.IsChecked == nil
}

// Apply merges the patch into item and returns the result.
func (p ListItemPatch) Apply(item ListItem) ListItem {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		item.Unit = *p.Unit
	}
	if p.IsChecked != nil {
		item.IsChecked = *p.IsChecked
	}
	return item
}
