package stocks

import (
	"context"
	"sync"
	"testing"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreInsertAssignsIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Insert(ctx, brahma())
	require.NoError(t, err)

	second := brahma()
	second.Name = "Bohemia"
	created, err := store.Insert(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, created.ID)

	_, err = store.Insert(ctx, brahma())
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMemoryStoreFindMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item, err := store.FindByID(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, item)

	item, err = store.FindByName(ctx, "Brahma")
	assert.NoError(t, err)
	assert.Nil(t, item)

	assert.NoError(t, store.DeleteByID(ctx, 1))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	created, err := store.Insert(ctx, brahma())
	require.NoError(t, err)

	created.Quantity = 999

	found, err := store.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, found.Quantity)
}

func TestMemoryStoreMutateQuantity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	created, err := store.Insert(ctx, brahma())
	require.NoError(t, err)

	missing, err := store.MutateQuantity(ctx, created.ID+1, func(models.StockItem) (int, error) {
		t.Fatal("fn must not run for a missing item")
		return 0, nil
	})
	assert.NoError(t, err)
	assert.Nil(t, missing)

	failure := &CapacityExceededError{ID: created.ID, Amount: 1}
	_, err = store.MutateQuantity(ctx, created.ID, func(models.StockItem) (int, error) {
		return 42, failure
	})
	assert.Same(t, failure, err)
	assert.Equal(t, 10, storedQuantity(t, store, created.ID))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = store.MutateQuantity(cancelled, created.ID, func(current models.StockItem) (int, error) {
		return current.Quantity + 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	engine := NewEngine(store, DecrementLegacy)

	item := brahma()
	item.Quantity = 0
	item.MaxCapacity = 100
	created, err := engine.Create(ctx, item)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = engine.Increment(ctx, created.ID, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, storedQuantity(t, store, created.ID))
}
