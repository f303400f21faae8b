package model

// PopularProduct is reference data used to suggest item names.
type PopularProduct struct {
	ID         int64
	Name       string
	CategoryID int64
}
