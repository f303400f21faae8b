package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ptypek/listic/internal/logger"
)

var (
	// ErrUnavailable means the provider could not be reached or refused the call.
	ErrUnavailable = errors.New("extraction service unavailable")
	// ErrMalformed means the provider answered with something that is not a valid item list.
	ErrMalformed = errors.New("extraction response malformed")
)

// ExtractedItem is one validated entry of an extraction answer.
type ExtractedItem struct {
	Name     string
	Quantity float64
	Unit     string
	Category string
}

type extractionResponse struct {
	Items *[]extractionEntry `json:"items"`
}

type extractionEntry struct {
	Name     *string  `json:"name"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
	Category *string  `json:"category"`
}

// Extractor turns recipe texts into shopping list entries through a Provider.
type Extractor struct {
	provider   Provider
	limiter    *RateLimiter
	categories []string
}

// NewExtractor creates an extractor. categories are the labels offered to the model.
func NewExtractor(provider Provider, limiter *RateLimiter, categories []string) *Extractor {
	if limiter == nil {
		limiter = NewRateLimiter(DefaultRateLimit)
	}
	return &Extractor{provider: provider, limiter: limiter, categories: categories}
}

// Extract sends recipes to the provider and validates the answer. It returns
// ErrUnavailable when the call fails and ErrMalformed when the answer does not
// match the expected shape.
func (e *Extractor) Extract(ctx context.Context, recipes []string) ([]ExtractedItem, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrUnavailable)
	}

	cleaned := make([]string, 0, len(recipes))
	for _, r := range recipes {
		if s := SanitizeRecipe(r); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: no recipe text after sanitizing", ErrMalformed)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	raw, err := e.provider.Complete(ctx, GetExtractionPrompt(e.categories), WrapRecipes(cleaned))
	if err != nil {
		logger.Warn("extraction call failed", "module", "ai", "action", "extract", "resource", e.provider.Name(), "result", "failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	items, err := ParseExtraction(raw)
	if err != nil {
		logger.Warn("extraction response rejected", "module", "ai", "action", "extract", "resource", e.provider.Name(), "result", "failed", "error", err, "response_len", len(raw))
		return nil, err
	}
	return items, nil
}

// ParseExtraction validates a raw provider answer. Markdown code fences
// around the JSON are tolerated.
func ParseExtraction(raw string) ([]ExtractedItem, error) {
	body := stripCodeFence(raw)
	if body == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformed)
	}

	var resp extractionResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if resp.Items == nil {
		return nil, fmt.Errorf("%w: missing items", ErrMalformed)
	}
	if len(*resp.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrMalformed)
	}

	items := make([]ExtractedItem, 0, len(*resp.Items))
	for i, entry := range *resp.Items {
		item, err := validateEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformed, i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func validateEntry(e extractionEntry) (ExtractedItem, error) {
	switch {
	case e.Name == nil:
		return ExtractedItem{}, errors.New("name missing")
	case strings.TrimSpace(*e.Name) == "":
		return ExtractedItem{}, errors.New("name empty")
	case e.Quantity == nil:
		return ExtractedItem{}, errors.New("quantity missing")
	case *e.Quantity <= 0:
		return ExtractedItem{}, fmt.Errorf("quantity %v not positive", *e.Quantity)
	case e.Unit == nil:
		return ExtractedItem{}, errors.New("unit missing")
	case e.Category == nil:
		return ExtractedItem{}, errors.New("category missing")
	}
	return ExtractedItem{
		Name:     strings.TrimSpace(*e.Name),
		Quantity: *e.Quantity,
		Unit:     strings.TrimSpace(*e.Unit),
		Category: *e.Category,
	}, nil
}

func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string, e.g. ```json
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
