package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
)

// MaxItemNameLength is the longest item name accepted, in characters.
const MaxItemNameLength = 100

type ItemService interface {
	Add(ctx context.Context, ownerID string, item model.NewListItem) (model.ListItem, error)
	Update(ctx context.Context, ownerID string, id int64, patch model.ListItemPatch) (model.ListItem, error)
	Delete(ctx context.Context, ownerID string, id int64) error
}

type itemService struct {
	lists      repository.ListRepository
	items      repository.ListItemRepository
	categories repository.CategoryRepository
	metrics    *metrics.Metrics
}

func NewItemService(
	lists repository.ListRepository,
	items repository.ListItemRepository,
	categories repository.CategoryRepository,
	m *metrics.Metrics,
) ItemService {
	return &itemService{lists: lists, items: items, categories: categories, metrics: m}
}

// Add creates a manual item on a list owned by ownerID.
func (s *itemService) Add(ctx context.Context, ownerID string, item model.NewListItem) (model.ListItem, error) {
	created, err := s.add(ctx, ownerID, item)
	s.metrics.IncrementItemMutation("add", resultOf(err))
	return created, err
}

func (s *itemService) add(ctx context.Context, ownerID string, item model.NewListItem) (model.ListItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ListItem{}, err
	}
	name, err := validateItemName(item.Name)
	if err != nil {
		return model.ListItem{}, err
	}
	if item.Quantity <= 0 {
		return model.ListItem{}, invalid("quantity", "must be greater than 0")
	}
	if _, err := ownedList(ctx, s.lists, ownerID, item.ListID); err != nil {
		return model.ListItem{}, err
	}
	if _, err := s.categories.GetByID(ctx, item.CategoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ListItem{}, invalid("categoryId", "unknown category")
		}
		return model.ListItem{}, fmt.Errorf("check category: %w", err)
	}

	item.Name = name
	item.Unit = strings.TrimSpace(item.Unit)
	item.Source = model.SourceManual
	created, err := s.items.Create(ctx, item)
	if err != nil {
		logger.Error("item create failed", "module", "service", "action", "create", "resource", "item", "result", "failed", "list_id", item.ListID, "user_id", ownerID, "error", err)
		return model.ListItem{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Debug("item created", "module", "service", "action", "create", "resource", "item", "result", "ok", "list_id", item.ListID, "item_id", created.ID)
	return created, nil
}

func (s *itemService) Update(ctx context.Context, ownerID string, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	updated, err := s.update(ctx, ownerID, id, patch)
	s.metrics.IncrementItemMutation("update", resultOf(err))
	return updated, err
}

func (s *itemService) update(ctx context.Context, ownerID string, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ListItem{}, err
	}
	if patch.IsEmpty() {
		return model.ListItem{}, invalid("body", "at least one field must be provided")
	}
	if patch.Name != nil {
		name, err := validateItemName(*patch.Name)
		if err != nil {
			return model.ListItem{}, err
		}
		patch.Name = &name
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return model.ListItem{}, invalid("quantity", "must be greater than 0")
	}
	if patch.Unit != nil {
		unit := strings.TrimSpace(*patch.Unit)
		patch.Unit = &unit
	}
	if _, err := ownedItem(ctx, s.lists, s.items, ownerID, id); err != nil {
		return model.ListItem{}, err
	}

	updated, err := s.items.Update(ctx, id, patch)
	if err != nil {
		logger.Error("item update failed", "module", "service", "action", "update", "resource", "item", "result", "failed", "item_id", id, "user_id", ownerID, "error", err)
		return model.ListItem{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, ownerID string, id int64) error {
	err := s.delete(ctx, ownerID, id)
	s.metrics.IncrementItemMutation("delete", resultOf(err))
	return err
}

func (s *itemService) delete(ctx context.Context, ownerID string, id int64) error {
	if err := requireOwner(ownerID); err != nil {
		return err
	}
	if _, err := ownedItem(ctx, s.lists, s.items, ownerID, id); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		logger.Error("item delete failed", "module", "service", "action", "delete", "resource", "item", "result", "failed", "item_id", id, "user_id", ownerID, "error", err)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func validateItemName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", invalid("name", "is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxItemNameLength {
		return "", invalid("name", fmt.Sprintf("must be at most %d characters", MaxItemNameLength))
	}
	return trimmed, nil
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrNotFound), errors.Is(err, ErrUnauthenticated):
		return metrics.ResultInvalid
	default:
		return metrics.ResultFailed
	}
}
