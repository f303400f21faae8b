// Package client keeps a session's view of the caller's latest shopping list
// and applies item edits optimistically before the server confirms them.
package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ptypek/listic/internal/logger"
	"github.com/ptypek/listic/internal/metrics"
	"github.com/ptypek/listic/internal/model"
	"github.com/ptypek/listic/internal/service/listview"
)

// Coordinator applies optimistic item mutations to a QueryCache and
// reconciles them with a RemoteStore.
type Coordinator struct {
	remote     RemoteStore
	identity   Identity
	lists      *QueryCache[model.ShoppingListWithItems]
	categories *QueryCache[[]model.Category]
	metrics    *metrics.Metrics
	now        func() time.Time
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithCategoryCache shares a category cache between coordinators.
func WithCategoryCache(c *QueryCache[[]model.Category]) Option {
	return func(co *Coordinator) { co.categories = c }
}

// WithMetrics records rollbacks on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(co *Coordinator) { co.metrics = m }
}

// WithClock overrides the timestamp source of optimistic entries.
func WithClock(now func() time.Time) Option {
	return func(co *Coordinator) { co.now = now }
}

func NewCoordinator(remote RemoteStore, identity Identity, lists *QueryCache[model.ShoppingListWithItems], opts ...Option) *Coordinator {
	c := &Coordinator{
		remote:     remote,
		identity:   identity,
		lists:      lists,
		categories: NewCategoryCache(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) owner(ctx context.Context) (string, error) {
	id, ok := c.identity.UserID(ctx)
	if !ok || id == "" {
		return "", ErrUnauthenticated
	}
	return id, nil
}

// Load returns the caller's most recent list, from cache when fresh.
func (c *Coordinator) Load(ctx context.Context) (model.ShoppingListWithItems, error) {
	owner, err := c.owner(ctx)
	if err != nil {
		return model.ShoppingListWithItems{}, err
	}
	key := Key{Entity: EntityLastList, OwnerID: owner}
	if list, ok := c.lists.Fresh(key); ok {
		return list, nil
	}
	return c.fetchList(ctx, key)
}

// Categories returns the category taxonomy, from cache when fresh.
func (c *Coordinator) Categories(ctx context.Context) ([]model.Category, error) {
	owner, err := c.owner(ctx)
	if err != nil {
		return nil, err
	}
	key := Key{Entity: EntityCategories, OwnerID: owner}
	if cats, ok := c.categories.Fresh(key); ok {
		return cats, nil
	}

	fetchCtx, gen, cancel := c.categories.BeginFetch(ctx, key)
	defer cancel()
	cats, err := c.remote.GetCategories(fetchCtx)
	if err != nil {
		return nil, readError(err)
	}
	c.categories.CompleteFetch(key, gen, cats)
	return cats, nil
}

// View loads the list and categories concurrently and groups the items.
func (c *Coordinator) View(ctx context.Context) (model.ListView, error) {
	if _, err := c.owner(ctx); err != nil {
		return model.ListView{}, err
	}

	var (
		list model.ShoppingListWithItems
		cats []model.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = c.Load(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = c.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.ListView{}, err
	}
	return listview.ToListView(list, cats), nil
}

// AddItem shows a temporary manual item in the cached list at once, then
// creates it remotely.
func (c *Coordinator) AddItem(ctx context.Context, item model.NewListItem) (model.ListItem, error) {
	owner, err := c.owner(ctx)
	if err != nil {
		return model.ListItem{}, err
	}
	key := Key{Entity: EntityLastList, OwnerID: owner}

	now := c.now().UTC()
	temp := model.ListItem{
		ListID:     item.ListID,
		CategoryID: item.CategoryID,
		Name:       item.Name,
		Quantity:   item.Quantity,
		Unit:       item.Unit,
		IsChecked:  false,
		Source:     model.SourceManual,
		CreatedAt:  now,
		UpdatedAt:  now,
		TempID:     uuid.NewString(),
	}
	snap, patched := c.lists.Patch(key, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		if l.ID != item.ListID {
			return l, false
		}
		l.Items = append(l.Items, temp)
		return l, true
	})

	item.Source = model.SourceManual
	created, err := c.remote.AddItem(ctx, item)
	if err != nil {
		return model.ListItem{}, c.fail(ctx, key, "add", snap, patched, dropTemp(temp.TempID), err)
	}

	c.lists.Update(key, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		i := slices.IndexFunc(l.Items, func(it model.ListItem) bool { return it.TempID == temp.TempID })
		if i < 0 {
			return l, false
		}
		l.Items[i] = created
		return l, true
	})
	c.finish(ctx, key, patched)
	return created, nil
}

// UpdateItem merges patch into the cached item at once, then updates it remotely.
func (c *Coordinator) UpdateItem(ctx context.Context, id int64, patch model.ListItemPatch) (model.ListItem, error) {
	owner, err := c.owner(ctx)
	if err != nil {
		return model.ListItem{}, err
	}
	if patch.IsEmpty() {
		return model.ListItem{}, fmt.Errorf("%w: nothing to update", ErrInvalid)
	}
	key := Key{Entity: EntityLastList, OwnerID: owner}

	now := c.now().UTC()
	snap, patched := c.lists.Patch(key, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		i := slices.IndexFunc(l.Items, func(it model.ListItem) bool { return it.ID == id })
		if i < 0 {
			return l, false
		}
		l.Items[i] = patch.Apply(l.Items[i])
		l.Items[i].UpdatedAt = now
		return l, true
	})

	updated, err := c.remote.UpdateItem(ctx, id, patch)
	if err != nil {
		return model.ListItem{}, c.fail(ctx, key, "update", snap, patched, revertFields(id, patch, snap.Value), err)
	}
	c.finish(ctx, key, patched)
	return updated, nil
}

// DeleteItem removes the cached item at once, then deletes it remotely.
func (c *Coordinator) DeleteItem(ctx context.Context, id int64) error {
	owner, err := c.owner(ctx)
	if err != nil {
		return err
	}
	key := Key{Entity: EntityLastList, OwnerID: owner}

	snap, patched := c.lists.Patch(key, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		n := len(l.Items)
		l.Items = slices.DeleteFunc(l.Items, func(it model.ListItem) bool { return it.ID == id })
		return l, len(l.Items) != n
	})

	if err := c.remote.DeleteItem(ctx, id); err != nil {
		return c.fail(ctx, key, "delete", snap, patched, reinsert(id, snap.Value), err)
	}
	c.finish(ctx, key, patched)
	return nil
}

// ReportAIFeedback flags an AI-generated item. The cache is not touched.
func (c *Coordinator) ReportAIFeedback(ctx context.Context, listItemID int64) error {
	owner, err := c.owner(ctx)
	if err != nil {
		return err
	}
	if err := c.remote.RecordAIFeedback(ctx, listItemID); err != nil {
		logger.Warn("ai feedback failed", "module", "client", "action", "feedback", "resource", "item", "result", "failed", "user_id", owner, "item_id", listItemID, "error", err)
		return writeError("feedback", err)
	}
	return nil
}

func (c *Coordinator) fetchList(ctx context.Context, key Key) (model.ShoppingListWithItems, error) {
	fetchCtx, gen, cancel := c.lists.BeginFetch(ctx, key)
	defer cancel()

	list, err := c.remote.GetLastList(fetchCtx)
	if err != nil {
		return model.ShoppingListWithItems{}, readError(err)
	}
	if !c.lists.CompleteFetch(key, gen, list) {
		// A newer optimistic write owns the entry now.
		if current, ok := c.lists.Peek(key); ok {
			return current, nil
		}
	}
	return list, nil
}

type listUndo = func(model.ShoppingListWithItems) (model.ShoppingListWithItems, bool)

// fail rolls back an optimistic patch, then settles the entry and classifies
// err. When newer writes exist only this patch is undone.
func (c *Coordinator) fail(ctx context.Context, key Key, op string, snap Snapshot[model.ShoppingListWithItems], patched bool, undo listUndo, err error) error {
	rolledBack := patched && c.lists.Revert(key, snap, undo)
	if rolledBack {
		c.metrics.IncrementRollback(op)
	}
	logger.Warn("optimistic mutation failed", "module", "client", "action", op, "resource", "item", "result", "failed", "user_id", key.OwnerID, "rolled_back", rolledBack, "error", err)
	c.finish(ctx, key, patched)
	return writeError(op, err)
}

// finish releases the operation's patch. Only the last pending operation
// refetches; earlier ones mark the entry stale so no read overwrites a
// patch that is still in flight.
func (c *Coordinator) finish(ctx context.Context, key Key, patched bool) {
	remaining := c.lists.Pending(key)
	if patched {
		remaining = c.lists.Release(key)
	}
	if remaining > 0 {
		c.lists.Invalidate(key)
		return
	}
	c.settle(ctx, key)
}

// settle replaces the entry with the server's state. When the re-read fails
// the entry stays stale and the next Load refetches.
func (c *Coordinator) settle(ctx context.Context, key Key) {
	if _, present := c.lists.Peek(key); !present {
		return
	}
	c.lists.Invalidate(key)
	if _, err := c.fetchList(ctx, key); err != nil {
		logger.Warn("settle refetch failed", "module", "client", "action", "settle", "resource", "list", "result", "failed", "user_id", key.OwnerID, "error", err)
	}
}

func dropTemp(tempID string) listUndo {
	return func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		n := len(l.Items)
		l.Items = slices.DeleteFunc(l.Items, func(it model.ListItem) bool { return it.TempID == tempID })
		return l, len(l.Items) != n
	}
}

// revertFields puts back the fields patch touched, taking them from prior.
func revertFields(id int64, patch model.ListItemPatch, prior model.ShoppingListWithItems) listUndo {
	return func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		was := slices.IndexFunc(prior.Items, func(it model.ListItem) bool { return it.ID == id })
		i := slices.IndexFunc(l.Items, func(it model.ListItem) bool { return it.ID == id })
		if was < 0 || i < 0 {
			return l, false
		}
		old := prior.Items[was]
		if patch.Name != nil {
			l.Items[i].Name = old.Name
		}
		if patch.Quantity != nil {
			l.Items[i].Quantity = old.Quantity
		}
		if patch.Unit != nil {
			l.Items[i].Unit = old.Unit
		}
		if patch.IsChecked != nil {
			l.Items[i].IsChecked = old.IsChecked
		}
		l.Items[i].UpdatedAt = old.UpdatedAt
		return l, true
	}
}

// reinsert puts a deleted item back at its old position.
func reinsert(id int64, prior model.ShoppingListWithItems) listUndo {
	return func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		was := slices.IndexFunc(prior.Items, func(it model.ListItem) bool { return it.ID == id })
		if was < 0 || slices.ContainsFunc(l.Items, func(it model.ListItem) bool { return it.ID == id }) {
			return l, false
		}
		l.Items = slices.Insert(l.Items, min(was, len(l.Items)), prior.Items[was])
		return l, true
	}
}

func readError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrNotFound):
		return err
	default:
		return fmt.Errorf("fetch: %w", err)
	}
}

func writeError(op string, err error) error {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalid):
		return err
	default:
		return &OperationError{Op: op, Err: err}
	}
}
