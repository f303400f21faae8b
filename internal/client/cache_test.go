package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptypek/listic/internal/client"
	"github.com/ptypek/listic/internal/model"
)

func TestQueryCache_ReturnsCopies(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	got, ok := cache.Peek(lastListKey)
	require.True(t, ok)
	got.Items[0].Name = "changed"

	again, _ := cache.Peek(lastListKey)
	require.Equal(t, "Milk", again.Items[0].Name)
}

func TestQueryCache_KeysAreIsolated(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	_, ok := cache.Peek(client.Key{Entity: client.EntityLastList, OwnerID: "user-2"})
	require.False(t, ok)
}

func TestQueryCache_PatchAbandonsInFlightFetch(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	fetchCtx, gen, cancel := cache.BeginFetch(context.Background(), lastListKey)
	defer cancel()

	_, ok := cache.Patch(lastListKey, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		l.Items[0].Quantity = 7
		return l, true
	})
	require.True(t, ok)
	require.ErrorIs(t, fetchCtx.Err(), context.Canceled)

	require.False(t, cache.CompleteFetch(lastListKey, gen, *sampleList()))
	got, _ := cache.Peek(lastListKey)
	require.Equal(t, 7.0, got.Items[0].Quantity)
}

func setQty(i int, q float64) func(model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
	return func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		l.Items[i].Quantity = q
		return l, true
	}
}

func TestQueryCache_RevertRestoresSnapshotWhenNoNewerWrite(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	first, ok := cache.Patch(lastListKey, setQty(0, 3))
	require.True(t, ok)
	second, ok := cache.Patch(lastListKey, setQty(0, 4))
	require.True(t, ok)

	require.False(t, cache.Revert(lastListKey, first, nil))
	got, _ := cache.Peek(lastListKey)
	require.Equal(t, 4.0, got.Items[0].Quantity)

	require.True(t, cache.Revert(lastListKey, second, nil))
	got, _ = cache.Peek(lastListKey)
	require.Equal(t, 3.0, got.Items[0].Quantity)
}

func TestQueryCache_RevertUndoesOnlyItsOwnPatch(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	first, ok := cache.Patch(lastListKey, setQty(0, 9))
	require.True(t, ok)
	_, ok = cache.Patch(lastListKey, setQty(1, 5))
	require.True(t, ok)

	require.True(t, cache.Revert(lastListKey, first, setQty(0, first.Value.Items[0].Quantity)))
	got, _ := cache.Peek(lastListKey)
	require.Equal(t, 2.0, got.Items[0].Quantity)
	require.Equal(t, 5.0, got.Items[1].Quantity)
}

func TestQueryCache_FetchDroppedWhilePatchPending(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	_, ok := cache.Patch(lastListKey, setQty(0, 9))
	require.True(t, ok)
	require.Equal(t, 1, cache.Pending(lastListKey))

	_, gen, cancel := cache.BeginFetch(context.Background(), lastListKey)
	defer cancel()
	require.False(t, cache.CompleteFetch(lastListKey, gen, *sampleList()))
	got, _ := cache.Peek(lastListKey)
	require.Equal(t, 9.0, got.Items[0].Quantity)

	require.Zero(t, cache.Release(lastListKey))
	require.Zero(t, cache.Release(lastListKey))
	_, gen, cancel2 := cache.BeginFetch(context.Background(), lastListKey)
	defer cancel2()
	require.True(t, cache.CompleteFetch(lastListKey, gen, *sampleList()))
}

func TestQueryCache_UpdateIsNotPending(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())

	require.True(t, cache.Update(lastListKey, setQty(0, 7)))
	require.Zero(t, cache.Pending(lastListKey))
	got, _ := cache.Peek(lastListKey)
	require.Equal(t, 7.0, got.Items[0].Quantity)
}

func TestQueryCache_PatchWithoutEntry(t *testing.T) {
	cache := client.NewListCache()

	_, ok := cache.Patch(lastListKey, func(l model.ShoppingListWithItems) (model.ShoppingListWithItems, bool) {
		return l, true
	})
	require.False(t, ok)
	require.True(t, cache.Stale(lastListKey))
}

func TestQueryCache_InvalidateMarksStale(t *testing.T) {
	cache := client.NewListCache()
	cache.Set(lastListKey, *sampleList())
	require.False(t, cache.Stale(lastListKey))

	cache.Invalidate(lastListKey)
	require.True(t, cache.Stale(lastListKey))
	_, ok := cache.Fresh(lastListKey)
	require.False(t, ok)
	_, ok = cache.Peek(lastListKey)
	require.True(t, ok)
}
