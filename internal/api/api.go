// Package api holds the JSON shapes of the HTTP API. IDs travel as strings
// so 64-bit snowflake IDs survive JavaScript clients.
package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ptypek/listic/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type List struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type ListWithItems struct {
	List
	Items []Item `json:"items"`
}

type Item struct {
	ID         string  `json:"id"`
	ListID     string  `json:"listId"`
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	IsChecked  bool    `json:"isChecked"`
	Source     string  `json:"source"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CategoryGroup struct {
	Category Category `json:"category"`
	Items    []Item   `json:"items"`
}

type ListView struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	GroupedItems []CategoryGroup `json:"groupedItems"`
}

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

type AIFeedback struct {
	ID         string `json:"id"`
	ListItemID string `json:"listItemId"`
	CreatedAt  string `json:"createdAt"`
}

type CreateListRequest struct {
	Name string `json:"name"`
}

type UpdateListRequest struct {
	Name string `json:"name"`
}

type GenerateListRequest struct {
	ListName string   `json:"listName"`
	Recipes  []string `json:"recipes"`
}

type CreateItemRequest struct {
	ListID     string  `json:"listId"`
	CategoryID string  `json:"categoryId"`
	Name       string  `json:"name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

type UpdateItemRequest struct {
	Name      *string  `json:"name,omitempty"`
	Quantity  *float64 `json:"quantity,omitempty"`
	Unit      *string  `json:"unit,omitempty"`
	IsChecked *bool    `json:"isChecked,omitempty"`
}

type AIFeedbackRequest struct {
	ListItemID string `json:"listItemId"`
}

func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

func FromList(l model.ShoppingList) List {
	return List{
		ID:        FormatID(l.ID),
		Name:      l.Name,
		CreatedAt: formatTime(l.CreatedAt),
		UpdatedAt: formatTime(l.UpdatedAt),
	}
}

func FromListWithItems(l model.ShoppingListWithItems) ListWithItems {
	return ListWithItems{List: FromList(l.ShoppingList), Items: FromItems(l.Items)}
}

func FromItem(i model.ListItem) Item {
	return Item{
		ID:         FormatID(i.ID),
		ListID:     FormatID(i.ListID),
		CategoryID: FormatID(i.CategoryID),
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		IsChecked:  i.IsChecked,
		Source:     string(i.Source),
		CreatedAt:  formatTime(i.CreatedAt),
		UpdatedAt:  formatTime(i.UpdatedAt),
	}
}

func FromItems(items []model.ListItem) []Item {
	out := make([]Item, 0, len(items))
	for _, i := range items {
		out = append(out, FromItem(i))
	}
	return out
}

func FromCategory(c model.Category) Category {
	return Category{ID: FormatID(c.ID), Name: c.Name}
}

func FromListView(v model.ListView) ListView {
	groups := make([]CategoryGroup, 0, len(v.GroupedItems))
	for _, g := range v.GroupedItems {
		groups = append(groups, CategoryGroup{Category: FromCategory(g.Category), Items: FromItems(g.Items)})
	}
	return ListView{ID: FormatID(v.ID), Name: v.Name, GroupedItems: groups}
}

func FromProduct(p model.PopularProduct) Product {
	return Product{ID: FormatID(p.ID), Name: p.Name, CategoryID: FormatID(p.CategoryID)}
}

func FromAIFeedback(f model.AIFeedback) AIFeedback {
	return AIFeedback{ID: FormatID(f.ID), ListItemID: FormatID(f.ListItemID), CreatedAt: formatTime(f.CreatedAt)}
}

// ToModel decodes a wire list. ownerID is not part of the wire format.
func (l List) ToModel(ownerID string) (model.ShoppingList, error) {
	id, err := ParseID(l.ID)
	if err != nil {
		return model.ShoppingList{}, err
	}
	createdAt, err := parseTime(l.CreatedAt)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("list createdAt: %w", err)
	}
	updatedAt, err := parseTime(l.UpdatedAt)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("list updatedAt: %w", err)
	}
	return model.ShoppingList{ID: id, Name: l.Name, OwnerID: ownerID, CreatedAt: createdAt, UpdatedAt: updatedAt}, nil
}

func (l ListWithItems) ToModel(ownerID string) (model.ShoppingListWithItems, error) {
	list, err := l.List.ToModel(ownerID)
	if err != nil {
		return model.ShoppingListWithItems{}, err
	}
	items := make([]model.ListItem, 0, len(l.Items))
	for _, wi := range l.Items {
		item, err := wi.ToModel()
		if err != nil {
			return model.ShoppingListWithItems{}, err
		}
		items = append(items, item)
	}
	return model.ShoppingListWithItems{ShoppingList: list, Items: items}, nil
}

func (i Item) ToModel() (model.ListItem, error) {
	id, err := ParseID(i.ID)
	if err != nil {
		return model.ListItem{}, err
	}
	listID, err := ParseID(i.ListID)
	if err != nil {
		return model.ListItem{}, err
	}
	categoryID, err := ParseID(i.CategoryID)
	if err != nil {
		return model.ListItem{}, err
	}
	createdAt, err := parseTime(i.CreatedAt)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("item createdAt: %w", err)
	}
	updatedAt, err := parseTime(i.UpdatedAt)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("item updatedAt: %w", err)
	}
	return model.ListItem{
		ID:         id,
		ListID:     listID,
		CategoryID: categoryID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Unit:       i.Unit,
		IsChecked:  i.IsChecked,
		Source:     model.ItemSource(i.Source),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

func (c Category) ToModel() (model.Category, error) {
	id, err := ParseID(c.ID)
	if err != nil {
		return model.Category{}, err
	}
	return model.Category{ID: id, Name: c.Name}, nil
}

// ToPatch converts the request into a patch; nil fields stay unchanged.
func (r UpdateItemRequest) ToPatch() model.ListItemPatch {
	return model.ListItemPatch{Name: r.Name, Quantity: r.Quantity, Unit: r.Unit, IsChecked: r.IsChecked}
}

func FromPatch(p model.ListItemPatch) UpdateItemRequest {
	return UpdateItemRequest{Name: p.Name, Quantity: p.Quantity, Unit: p.Unit, IsChecked: p.IsChecked}
}
