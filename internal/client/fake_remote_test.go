package client_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ptypek/listic/internal/client"
	"github.com/ptypek/listic/internal/model"
)

var baseTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

// fakeRemote is an in-memory RemoteStore. When gate is set, writes announce
// themselves on entered and block until gate is closed. gates holds per-item
// gates that take precedence over gate.
type fakeRemote struct {
	mu         sync.Mutex
	list       *model.ShoppingListWithItems
	categories []model.Category
	nextID     int64

	gate    chan struct{}
	gates   map[int64]chan struct{}
	entered chan struct{}

	writeErr  error
	failIDs   map[int64]error
	readErr   error
	writes    int
	reads     int
	feedbacks []int64
}

func newFakeRemote(list *model.ShoppingListWithItems) *fakeRemote {
	return &fakeRemote{
		list:   list,
		nextID: 100,
		categories: []model.Category{
			{ID: 1, Name: "nabiał"},
			{ID: 2, Name: "warzywa"},
			{ID: 8, Name: "inne"},
		},
	}
}

func sampleList() *model.ShoppingListWithItems {
	return &model.ShoppingListWithItems{
		ShoppingList: model.ShoppingList{ID: 10, Name: "Weekend", OwnerID: "user-1", CreatedAt: baseTime, UpdatedAt: baseTime},
		Items: []model.ListItem{
			{ID: 1, ListID: 10, CategoryID: 1, Name: "Milk", Quantity: 2, Unit: "l", Source: model.SourceManual, CreatedAt: baseTime, UpdatedAt: baseTime},
			{ID: 2, ListID: 10, CategoryID: 2, Name: "Carrot", Quantity: 1, Unit: "kg", Source: model.SourceAI, CreatedAt: baseTime, UpdatedAt: baseTime},
		},
	}
}

func (f *fakeRemote) wait(ctx context.Context, id int64) error {
	f.mu.Lock()
	gate, entered := f.gate, f.entered
	if g, ok := f.gates[id]; ok {
		gate = g
	}
	f.mu.Unlock()
	if entered != nil {
		entered <- struct{}{}
	}
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeRemote) writeFailure(id int64) error {
	if err, ok := f.failIDs[id]; ok {
		return err
	}
	return f.writeErr
}

func (f *fakeRemote) GetLastList(context.Context) (model.ShoppingListWithItems, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return model.ShoppingListWithItems{}, f.readErr
	}
	if f.list == nil {
		return model.ShoppingListWithItems{}, client.ErrNotFound
	}
	return f.list.Clone(), nil
}

func (f *fakeRemote) GetCategories(context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	return slices.Clone(f.categories), nil
}

func (f *fakeRemote) AddItem(ctx context.Context, item model.NewListItem) (model.ListItem, error) {
	if err := f.wait(ctx, 0); err != nil {
		return model.ListItem{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if err := f.writeFailure(0); err != nil {
		return model.ListItem{}, err
	}
	f.nextID++
	created := model.ListItem{
		ID: f.nextID, ListID: item.ListID, CategoryID: item.CategoryID, Name: item.Name,
		Quantity: item.Quantity, Unit: item.Unit, Source: item.Source, CreatedAt: baseTime, UpdatedAt: baseTime,
	}
	f.list.Items = append(f.list.Items, created)
	return created, nil
}

func (f *fakeRemote) UpdateItem(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	if err := f.wait(ctx, id); err != nil {
		return model.ListItem{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if err := f.writeFailure(id); err != nil {
		return model.ListItem{}, err
	}
	i := slices.IndexFunc(f.list.Items, func(it model.ListItem) bool { return it.ID == id })
	if i < 0 {
		return model.ListItem{}, client.ErrNotFound
	}
	f.list.Items[i] = patch.Apply(f.list.Items[i])
	return f.list.Items[i], nil
}

func (f *fakeRemote) DeleteItem(ctx context.Context, id int64) error {
	if err := f.wait(ctx, id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if err := f.writeFailure(id); err != nil {
		return err
	}
	f.list.Items = slices.DeleteFunc(f.list.Items, func(it model.ListItem) bool { return it.ID == id })
	return nil
}

func (f *fakeRemote) RecordAIFeedback(_ context.Context, listItemID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if err := f.writeFailure(listItemID); err != nil {
		return err
	}
	f.feedbacks = append(f.feedbacks, listItemID)
	return nil
}

func (f *fakeRemote) setReadErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readErr = err
}

func (f *fakeRemote) counts() (reads, writes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads, f.writes
}
