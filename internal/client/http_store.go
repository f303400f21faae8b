package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ptypek/listic/internal/api"
	"github.com/ptypek/listic/internal/model"
)

// HTTPStore is a RemoteStore backed by the listic HTTP API.
type HTTPStore struct {
	baseURL string
	token   string
	userID  string
	client  *http.Client
}

// NewHTTPStore talks to the server at baseURL (without the /api/v1 suffix)
// using token as bearer credentials. userID is recorded as the owner of
// lists it returns.
func NewHTTPStore(baseURL, token, userID string, httpClient *http.Client) *HTTPStore {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1",
		token:   token,
		userID:  userID,
		client:  httpClient,
	}
}

func (s *HTTPStore) GetLastList(ctx context.Context) (model.ShoppingListWithItems, error) {
	var out api.ListWithItems
	if err := s.do(ctx, http.MethodGet, "/lists/last", nil, &out); err != nil {
		return model.ShoppingListWithItems{}, err
	}
	return out.ToModel(s.userID)
}

func (s *HTTPStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	var out []api.Category
	if err := s.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(out))
	for _, c := range out {
		cat, err := c.ToModel()
		if err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func (s *HTTPStore) AddItem(ctx context.Context, item model.NewListItem) (model.ListItem, error) {
	req := api.CreateItemRequest{
		ListID:     api.FormatID(item.ListID),
		CategoryID: api.FormatID(item.CategoryID),
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
	}
	var out api.Item
	if err := s.do(ctx, http.MethodPost, "/list-items", req, &out); err != nil {
		return model.ListItem{}, err
	}
	return out.ToModel()
}

func (s *HTTPStore) UpdateItem(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	var out api.Item
	if err := s.do(ctx, http.MethodPatch, "/list-items/"+api.FormatID(id), api.FromPatch(patch), &out); err != nil {
		return model.ListItem{}, err
	}
	return out.ToModel()
}

func (s *HTTPStore) DeleteItem(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodDelete, "/list-items/"+api.FormatID(id), nil, nil)
}

func (s *HTTPStore) RecordAIFeedback(ctx context.Context, listItemID int64) error {
	req := api.AIFeedbackRequest{ListItemID: api.FormatID(listItemID)}
	return s.do(ctx, http.MethodPost, "/ai-feedback", req, nil)
}

// StatusError is a non-success API response.
type StatusError struct {
	Status  int
	Message string
	Field   string
}

func (e *StatusError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("http %d: %s: %s", e.Status, e.Field, e.Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthenticated:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrInvalid:
		return e.Status == http.StatusBadRequest
	}
	return false
}

func (s *HTTPStore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil && !errors.Is(err, io.EOF) {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &StatusError{Status: resp.StatusCode, Message: apiErr.Error, Field: apiErr.Field}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
