package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/snowflake"
)

type ListItemRepository interface {
	Create(ctx context.Context, item model.NewListItem) (model.ListItem, error)
	CreateBatch(ctx context.Context, items []model.NewListItem) ([]model.ListItem, error)
	GetByID(ctx context.Context, id int64) (model.ListItem, error)
	ListByList(ctx context.Context, listID int64) ([]model.ListItem, error)
	Update(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error)
	Delete(ctx context.Context, id int64) error
}

type listItemRepository struct {
	db dbtx
}

func NewListItemRepository(db dbtx) ListItemRepository {
	return &listItemRepository{db: db}
}

const itemColumns = `id, list_id, category_id, name, quantity, unit, is_checked, source, created_at, updated_at`

func (r *listItemRepository) Create(ctx context.Context, item model.NewListItem) (model.ListItem, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO list_items (id, list_id, category_id, name, quantity, unit, is_checked, source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		id,
		item.ListID,
		item.CategoryID,
		item.Name,
		item.Quantity,
		item.Unit,
		string(item.Source),
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("create list item: %w", err)
	}

	return model.ListItem{
		ID:         id,
		ListID:     item.ListID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		Source:     item.Source,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// CreateBatch inserts all items in one statement, so either all rows land or none do.
func (r *listItemRepository) CreateBatch(ctx context.Context, items []model.NewListItem) ([]model.ListItem, error) {
	if len(items) == 0 {
		return []model.ListItem{}, nil
	}

	now := time.Now().UTC()
	ts := formatTime(now)
	placeholders := make([]string, 0, len(items))
	args := make([]any, 0, len(items)*9)
	created := make([]model.ListItem, 0, len(items))
	for _, item := range items {
		id := snowflake.NextID()
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, 0, ?, ?, ?)")
		args = append(args, id, item.ListID, item.CategoryID, item.Name, item.Quantity, item.Unit, string(item.Source), ts, ts)
		created = append(created, model.ListItem{
			ID:         id,
			ListID:     item.ListID,
			CategoryID: item.CategoryID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
			Source:     item.Source,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	query := `INSERT INTO list_items (id, list_id, category_id, name, quantity, unit, is_checked, source, created_at, updated_at) VALUES ` +
		strings.Join(placeholders, ", ")
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("create list items: %w", err)
	}
	return created, nil
}

func (r *listItemRepository) GetByID(ctx context.Context, id int64) (model.ListItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM list_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("get list item: %w", err)
	}
	return item, nil
}

// ListByList returns the items of a list in insertion order.
func (r *listItemRepository) ListByList(ctx context.Context, listID int64) ([]model.ListItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM list_items WHERE list_id = ? ORDER BY id`, listID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]model.ListItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan list item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list items: %w", err)
	}
	return items, nil
}

// Update writes only the fields set in patch.
func (r *listItemRepository) Update(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *patch.Quantity)
	}
	if patch.Unit != nil {
		sets = append(sets, "unit = ?")
		args = append(args, *patch.Unit)
	}
	if patch.IsChecked != nil {
		sets = append(sets, "is_checked = ?")
		args = append(args, boolToInt(*patch.IsChecked))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(time.Now()), id)

	query := `UPDATE list_items SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return model.ListItem{}, fmt.Errorf("update list item: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *listItemRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM list_items WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete list item: %w", err)
	}
	return nil
}

func scanItem(s rowScanner) (model.ListItem, error) {
	var item model.ListItem
	var isChecked int
	var source string
	var createdAt, updatedAt string
	if err := s.Scan(
		&item.ID,
		&item.ListID,
		&item.CategoryID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&isChecked,
		&source,
		&createdAt,
		&updatedAt,
	); err != nil {
		return model.ListItem{}, err
	}
	item.IsChecked = isChecked != 0
	item.Source = model.ItemSource(source)

	var err error
	item.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("parse item created_at: %w", err)
	}
	item.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return model.ListItem{}, fmt.Errorf("parse item updated_at: %w", err)
	}
	return item, nil
}
