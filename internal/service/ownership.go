package service

import (
	"context"
	"strings"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
)

func requireOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrUnauthenticated
	}
	return nil
}

// ownedList loads a list and hides lists of other owners behind ErrNotFound.
func ownedList(ctx context.Context, lists repository.ListRepository, ownerID string, id int64) (model.ShoppingList, error) {
	list, err := lists.GetByID(ctx, id)
	if err != nil {
		return model.ShoppingList{}, notFoundOr(err, "get list")
	}
	if list.OwnerID != ownerID {
		return model.ShoppingList{}, ErrNotFound
	}
	return list, nil
}

// ownedItem loads an item whose list belongs to ownerID.
func ownedItem(ctx context.Context, lists repository.ListRepository, items repository.ListItemRepository, ownerID string, id int64) (model.ListItem, error) {
	item, err := items.GetByID(ctx, id)
	if err != nil {
		return model.ListItem{}, notFoundOr(err, "get item")
	}
	if _, err := ownedList(ctx, lists, ownerID, item.ListID); err != nil {
		return model.ListItem{}, err
	}
	return item, nil
}
