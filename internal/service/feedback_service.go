package service

import (
	"context"
	"fmt"

	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
)

type FeedbackService interface {
	Record(ctx context.Context, ownerID string, listItemID int64) (model.AIFeedback, error)
}

type feedbackService struct {
	lists    repository.ListRepository
	items    repository.ListItemRepository
	feedback repository.AIFeedbackRepository
}

func NewFeedbackService(lists repository.ListRepository, items repository.ListItemRepository, feedback repository.AIFeedbackRepository) FeedbackService {
	return &feedbackService{lists: lists, items: items, feedback: feedback}
}

// Record flags an AI-generated item of the caller as incorrect.
func (s *feedbackService) Record(ctx context.Context, ownerID string, listItemID int64) (model.AIFeedback, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.AIFeedback{}, err
	}
	item, err := ownedItem(ctx, s.lists, s.items, ownerID, listItemID)
	if err != nil {
		return model.AIFeedback{}, err
	}
	if item.Source != model.SourceAI {
		return model.AIFeedback{}, invalid("listItemId", "feedback is only accepted for AI-generated items")
	}

	fb, err := s.feedback.Create(ctx, listItemID, ownerID)
	if err != nil {
		logger.Error("ai feedback save failed", "module", "service", "action", "create", "resource", "ai_feedback", "result", "failed", "item_id", listItemID, "user_id", ownerID, "error", err)
		return model.AIFeedback{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Info("ai feedback recorded", "module", "service", "action", "create", "resource", "ai_feedback", "result", "ok", "item_id", listItemID, "user_id", ownerID)
	return fb, nil
}
