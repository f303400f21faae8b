package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/snowflake"
)

type AIFeedbackRepository interface {
	Create(ctx context.Context, listItemID int64, userID string) (model.AIFeedback, error)
	CountByItem(ctx context.Context, listItemID int64) (int, error)
}

type aiFeedbackRepository struct {
	db dbtx
}

func NewAIFeedbackRepository(db dbtx) AIFeedbackRepository {
	return &aiFeedbackRepository{db: db}
}

func (r *aiFeedbackRepository) Create(ctx context.Context, listItemID int64, userID string) (model.AIFeedback, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO ai_feedback_log (id, list_item_id, user_id, created_at) VALUES (?, ?, ?, ?)`,
		id,
		listItemID,
		userID,
		formatTime(now),
	)
	if err != nil {
		return model.AIFeedback{}, fmt.Errorf("create ai feedback: %w", err)
	}
	return model.AIFeedback{
		ID:         id,
		ListItemID: listItemID,
		UserID:     userID,
		CreatedAt:  now,
	}, nil
}

func (r *aiFeedbackRepository) CountByItem(ctx context.Context, listItemID int64) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ai_feedback_log WHERE list_item_id = ?`, listItemID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ai feedback: %w", err)
	}
	return count, nil
}
