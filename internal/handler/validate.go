package handler

import (
	"strings"
	"unicode/utf8"

	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/service"
)

type fieldProblem struct {
	field   string
	message string
}

func validateName(name string, max int) *fieldProblem {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return &fieldProblem{"name", "is required"}
	}
	if utf8.RuneCountInString(trimmed) > max {
		return &fieldProblem{"name", "is too long"}
	}
	return nil
}

func validateRecipes(recipes []string) *fieldProblem {
	if len(recipes) == 0 {
		return &fieldProblem{"recipes", "at least one recipe is required"}
	}
	if len(recipes) > service.MaxRecipes {
		return &fieldProblem{"recipes", "too many recipes"}
	}
	for _, r := range recipes {
		if strings.TrimSpace(r) == "" {
			return &fieldProblem{"recipes", "recipe text must not be empty"}
		}
	}
	return nil
}

func validateSort(sort, order string) *fieldProblem {
	switch model.ListSort(sort) {
	case "", model.SortCreatedAt, model.SortName, model.SortUpdatedAt:
	default:
		return &fieldProblem{"sort", "must be one of created_at, name, updated_at"}
	}
	switch model.SortOrder(order) {
	case "", model.OrderAsc, model.OrderDesc:
	default:
		return &fieldProblem{"order", "must be asc or desc"}
	}
	return nil
}

func validatePatch(p model.ListItemPatch) *fieldProblem {
	if p.IsEmpty() {
		return &fieldProblem{"body", "at least one field must be provided"}
	}
	if p.Name != nil {
		if problem := validateName(*p.Name, service.MaxItemNameLength); problem != nil {
			return problem
		}
	}
	if p.Quantity != nil && *p.Quantity <= 0 {
		return &fieldProblem{"quantity", "must be greater than 0"}
	}
	return nil
}
