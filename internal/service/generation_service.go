package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/repository"
	"github.com/ptypek/listic/internal/service/ai"
	"github.com/ptypek/listic/internal/service/category"
)

const (
	// DefaultGeneratedListName is used when a generation request has no name.
	DefaultGeneratedListName = "Nowa lista z przepisów"
	// MaxRecipes is the most recipes one generation request may carry.
	MaxRecipes = 10
)

// Extractor turns recipe texts into validated shopping list entries.
type Extractor interface {
	Extract(ctx context.Context, recipes []string) ([]ai.ExtractedItem, error)
}

type GenerationService interface {
	Generate(ctx context.Context, ownerID, listName string, recipes []string) (model.ShoppingListWithItems, error)
}

type generationService struct {
	extractor Extractor
	tx        repository.Transactor
	metrics   *metrics.Metrics
}

func NewGenerationService(extractor Extractor, tx repository.Transactor, m *metrics.Metrics) GenerationService {
	return &generationService{extractor: extractor, tx: tx, metrics: m}
}

// ExtractionLabels returns the category labels offered to the extraction model.
func ExtractionLabels() []string {
	labels := make([]string, 0, len(category.AllExternalLabels))
	for _, l := range category.AllExternalLabels {
		labels = append(labels, string(l))
	}
	return labels
}

// Generate extracts items from recipes and stores them as a new list. The
// list and its items are written in one transaction; on any failure nothing
// is persisted.
func (s *generationService) Generate(ctx context.Context, ownerID, listName string, recipes []string) (model.ShoppingListWithItems, error) {
	start := time.Now()
	result, err := s.generate(ctx, ownerID, listName, recipes)
	s.metrics.ObserveGeneration(start, generationResult(err))
	return result, err
}

func (s *generationService) generate(ctx context.Context, ownerID, listName string, recipes []string) (model.ShoppingListWithItems, error) {
	if err := requireOwner(ownerID); err != nil {
		return model.ShoppingListWithItems{}, err
	}
	name := strings.TrimSpace(listName)
	if name == "" {
		name = DefaultGeneratedListName
	}
	name, err := validateListName(name)
	if err != nil {
		return model.ShoppingListWithItems{}, err
	}
	texts, err := validateRecipes(recipes)
	if err != nil {
		return model.ShoppingListWithItems{}, err
	}

	extracted, err := s.extractor.Extract(ctx, texts)
	if err != nil {
		if errors.Is(err, ai.ErrMalformed) {
			return model.ShoppingListWithItems{}, fmt.Errorf("%w: %v", ErrExtractionMalformed, err)
		}
		return model.ShoppingListWithItems{}, fmt.Errorf("%w: %v", ErrExtractionUnavailable, err)
	}

	var out model.ShoppingListWithItems
	err = s.tx.WithinTx(ctx, func(repos repository.TxRepositories) error {
		categories, err := repos.Categories.List(ctx)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		resolver, err := category.NewResolver(categories)
		if err != nil {
			return err
		}

		list, err := repos.Lists.Create(ctx, name, ownerID)
		if err != nil {
			return err
		}

		toInsert := make([]model.NewListItem, 0, len(extracted))
		for _, e := range extracted {
			toInsert = append(toInsert, model.NewListItem{
				ListID:     list.ID,
				CategoryID: resolver.Resolve(e.Category).ID,
				Name:       e.Name,
				Quantity:   e.Quantity,
				Unit:       e.Unit,
				Source:     model.SourceAI,
			})
		}
		if _, err := repos.Items.CreateBatch(ctx, toInsert); err != nil {
			return err
		}

		items, err := repos.Items.ListByList(ctx, list.ID)
		if err != nil {
			return err
		}
		out = model.ShoppingListWithItems{ShoppingList: list, Items: items}
		return nil
	})
	if errors.Is(err, category.ErrDefaultCategoryMissing) {
		logger.Error("category taxonomy has no default category", "module", "service", "action", "generate", "resource", "category", "result", metrics.ResultMisconfigured, "user_id", ownerID, "error", err)
		return model.ShoppingListWithItems{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	if err != nil {
		logger.Error("generated list save failed", "module", "service", "action", "generate", "resource", "list", "result", "failed", "user_id", ownerID, "items", len(extracted), "error", err)
		return model.ShoppingListWithItems{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	logger.Info("list generated", "module", "service", "action", "generate", "resource", "list", "result", "ok", "list_id", out.ID, "user_id", ownerID, "recipes", len(texts), "items", len(out.Items))
	return out, nil
}

func validateRecipes(recipes []string) ([]string, error) {
	if len(recipes) == 0 {
		return nil, invalid("recipes", "at least one recipe is required")
	}
	if len(recipes) > MaxRecipes {
		return nil, invalid("recipes", fmt.Sprintf("at most %d recipes are allowed", MaxRecipes))
	}
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		trimmed := strings.TrimSpace(r)
		if trimmed == "" {
			return nil, invalid("recipes", "recipe text must not be empty")
		}
		out = append(out, trimmed)
	}
	return out, nil
}

func generationResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrExtractionUnavailable):
		return metrics.ResultUnavailable
	case errors.Is(err, ErrExtractionMalformed):
		return metrics.ResultMalformed
	case errors.Is(err, ErrInvalid), errors.Is(err, ErrUnauthenticated):
		return metrics.ResultInvalid
	case errors.Is(err, category.ErrDefaultCategoryMissing):
		return metrics.ResultMisconfigured
	default:
		return metrics.ResultFailed
	}
}
