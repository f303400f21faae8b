package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/snowflake"
)

type ListRepository interface {
	Create(ctx context.Context, name, ownerID string) (model.ShoppingList, error)
	GetByID(ctx context.Context, id int64) (model.ShoppingList, error)
	ListByOwner(ctx context.Context, ownerID string, sort model.ListSort, order model.SortOrder) ([]model.ShoppingList, error)
	GetLastByOwner(ctx context.Context, ownerID string) (model.ShoppingList, error)
	UpdateName(ctx context.Context, id int64, name string) (model.ShoppingList, error)
	Delete(ctx context.Context, id int64) error
}

type listRepository struct {
	db dbtx
}

func NewListRepository(db dbtx) ListRepository {
	return &listRepository{db: db}
}

const listColumns = `id, name, owner_id, created_at, updated_at`

func (r *listRepository) Create(ctx context.Context, name, ownerID string) (model.ShoppingList, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO shopping_lists (id, name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		id,
		name,
		ownerID,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("create list: %w", err)
	}

	return model.ShoppingList{
		ID:        id,
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *listRepository) GetByID(ctx context.Context, id int64) (model.ShoppingList, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+listColumns+` FROM shopping_lists WHERE id = ?`, id)
	list, err := scanList(row)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("get list: %w", err)
	}
	return list, nil
}

func (r *listRepository) ListByOwner(ctx context.Context, ownerID string, sort model.ListSort, order model.SortOrder) ([]model.ShoppingList, error) {
	column, ok := sortColumns[sort]
	if !ok {
		column = sortColumns[model.SortCreatedAt]
	}
	direction := "DESC"
	if order == model.OrderAsc {
		direction = "ASC"
	}

	// column and direction come from closed sets above, never from input.
	query := fmt.Sprintf(`SELECT %s FROM shopping_lists WHERE owner_id = ? ORDER BY %s %s, id %s`, listColumns, column, direction, direction)
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}
	defer rows.Close()

	lists := make([]model.ShoppingList, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}
	return lists, nil
}

var sortColumns = map[model.ListSort]string{
	model.SortCreatedAt: "created_at",
	model.SortName:      "name",
	model.SortUpdatedAt: "updated_at",
}

// GetLastByOwner returns the most recently created list of the owner.
func (r *listRepository) GetLastByOwner(ctx context.Context, ownerID string) (model.ShoppingList, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+listColumns+` FROM shopping_lists WHERE owner_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		ownerID,
	)
	list, err := scanList(row)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("get last list: %w", err)
	}
	return list, nil
}

func (r *listRepository) UpdateName(ctx context.Context, id int64, name string) (model.ShoppingList, error) {
	_, err := r.db.ExecContext(
		ctx,
		`UPDATE shopping_lists SET name = ?, updated_at = ? WHERE id = ?`,
		name,
		formatTime(time.Now()),
		id,
	)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("update list: %w", err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the list. Its items go with it through ON DELETE CASCADE.
func (r *listRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}

func scanList(s rowScanner) (model.ShoppingList, error) {
	var list model.ShoppingList
	var createdAt, updatedAt string
	if err := s.Scan(&list.ID, &list.Name, &list.OwnerID, &createdAt, &updatedAt); err != nil {
		return model.ShoppingList{}, err
	}
	var err error
	list.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("parse list created_at: %w", err)
	}
	list.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.ShoppingList{}, fmt.Errorf("parse list updated_at: %w", err)
	}
	return list, nil
}
