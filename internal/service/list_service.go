package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
)

// MaxListNameLength is the longest list name accepted, in characters.
const MaxListNameLength = 100

type ListService interface {
	Create(ctx context.Context, ownerID, name string) (model.ShoppingList, error)
	List(ctx context.Context, ownerID string, sort model.ListSort, order model.SortOrder) ([]model.ShoppingList, error)
	Get(ctx context.Context, ownerID string, id int64) (model.ShoppingListWithItems, error)
	GetLast(ctx context.Context, ownerID string) (model.ShoppingListWithItems, error)
	Rename(ctx context.Context, ownerID string, id int64, name string) (model.ShoppingList, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

type listService struct {
	lists repository.ListRepository
	items repository.ListItemRepository
}

func NewListService(lists repository.ListRepository, items repository.ListItemRepository) ListService {
	return &listService{lists: lists, items: items}
}

func (s *listService) Create(ctx context.Context, ownerID, name string) (model.ShoppingList, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ShoppingList{}, err
	}
	trimmed, err := validateListName(name)
	if err != nil {
		return model.ShoppingList{}, err
	}

	list, err := s.lists.Create(ctx, trimmed, ownerID)
	if err != nil {
		logger.Error("list create failed", "module", "service", "action", "create", "resource", "list", "result", "failed", "user_id", ownerID, "error", err)
		return model.ShoppingList{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Info("list created", "module", "service", "action", "create", "resource", "list", "result", "ok", "list_id", list.ID, "user_id", ownerID)
	return list, nil
}

func (s *listService) List(ctx context.Context, ownerID string, sort model.ListSort, order model.SortOrder) ([]model.ShoppingList, error) {
	if err := requireOwner(ownerID); err != nil {
		return nil, err
	}
	if sort == "" {
		sort = model.SortCreatedAt
	}
	if order == "" {
		order = model.OrderDesc
	}
	switch sort {
	case model.SortCreatedAt, model.SortName, model.SortUpdatedAt:
	default:
		return nil, invalid("sort", "must be one of created_at, name, updated_at")
	}
	switch order {
	case model.OrderAsc, model.OrderDesc:
	default:
		return nil, invalid("order", "must be asc or desc")
	}
	return s.lists.ListByOwner(ctx, ownerID, sort, order)
}

func (s *listService) Get(ctx context.Context, ownerID string, id int64) (model.ShoppingListWithItems, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ShoppingListWithItems{}, err
	}
	list, err := ownedList(ctx, s.lists, ownerID, id)
	if err != nil {
		return model.ShoppingListWithItems{}, err
	}
	return s.withItems(ctx, list)
}

func (s *listService) GetLast(ctx context.Context, ownerID string) (model.ShoppingListWithItems, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ShoppingListWithItems{}, err
	}
	list, err := s.lists.GetLastByOwner(ctx, ownerID)
	if err != nil {
		return model.ShoppingListWithItems{}, notFoundOr(err, "get last list")
	}
	return s.withItems(ctx, list)
}

func (s *listService) Rename(ctx context.Context, ownerID string, id int64, name string) (model.ShoppingList, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ShoppingList{}, err
	}
	trimmed, err := validateListName(name)
	if err != nil {
		return model.ShoppingList{}, err
	}
	if _, err := ownedList(ctx, s.lists, ownerID, id); err != nil {
		return model.ShoppingList{}, err
	}
	return s.lists.UpdateName(ctx, id, trimmed)
}

func (s *listService) Delete(ctx context.Context, ownerID string, id int64) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if _, err := ownedList(ctx, s.lists, ownerID, id); err != nil {
		return err
	}
	if err := s.lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Info("list deleted", "module", "service", "action", "delete", "resource", "list", "result", "ok", "list_id", id, "user_id", ownerID)
	return nil
}

func (s *listService) withItems(ctx context.Context, list model.ShoppingList) (model.ShoppingListWithItems, error) {
	items, err := s.items.ListByList(ctx, list.ID)
	if err != nil {
		return model.ShoppingListWithItems{}, fmt.Errorf("list items: %w", err)
	}
	return model.ShoppingListWithItems{ShoppingList: list, Items: items}, nil
}

func validateListName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxListNameLength {
		return "", invalid("name", fmt.Sprintf("must be at most %d characters", MaxListNameLength))
	}
	return trimmed, nil
}
