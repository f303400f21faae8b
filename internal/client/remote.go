package client

import (
	"context"

	"github.com/ptypek/listic/internal/model"
)

// RemoteStore is the authoritative list storage the coordinator talks to.
// Implementations return errors wrapping ErrNotFound or ErrUnauthenticated
// when the server reports those conditions.
type RemoteStore interface {
	GetLastList(ctx context.Context) (model.ShoppingListWithItems, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	AddItem(ctx context.Context, item model.NewListItem) (model.ListItem, error)
	UpdateItem(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error)
	DeleteItem(ctx context.Context, id int64) error
	RecordAIFeedback(ctx context.Context, listItemID int64) error
}

// Identity supplies the current user.
type Identity interface {
	UserID(ctx context.Context) (string, bool)
}

// StaticIdentity is a fixed user ID. The empty value is unauthenticated.
type StaticIdentity string

func (s StaticIdentity) UserID(context.Context) (string, bool) {
	return string(s), s != ""
}
