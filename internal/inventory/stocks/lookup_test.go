package stocks

import (
	"context"
	"errors"
	"testing"

	"github.com/Erasmo-Dev/Cervejaria/pkg/metadata"
	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLookupFindByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	created, err := store.Insert(ctx, brahma())
	require.NoError(t, err)

	lookup := NewLookup(store)

	found, err := lookup.FindByName(ctx, "Brahma")
	require.NoError(t, err)
	assert.Equal(t, created, found)

	_, err = lookup.FindByName(ctx, "Skol")
	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "name", notFound.Field)
	assert.Equal(t, "stock item with name Skol not found", err.Error())
}

func TestLookupFindByID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	created, err := store.Insert(ctx, brahma())
	require.NoError(t, err)

	lookup := NewLookup(store)

	found, err := lookup.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brahma", found.Name)

	_, err = lookup.FindByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLookupListAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	lookup := NewLookup(store)

	items, err := lookup.ListAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = store.Insert(ctx, brahma())
	require.NoError(t, err)
	_, err = store.Insert(ctx, models.StockItem{Name: "Colorado Indica", Brand: "Colorado", MaxCapacity: 30, Quantity: 5, Category: metadata.CategoryIPA})
	require.NoError(t, err)

	items, err = lookup.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Brahma", items[0].Name)
	assert.Equal(t, "Colorado Indica", items[1].Name)
}

func TestLookupNilListFromStore(t *testing.T) {
	store := new(MockStore)
	store.On("FindAll", mock.Anything).Return(nil, nil).Once()

	items, err := NewLookup(store).ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLookupStoreError(t *testing.T) {
	dbErr := errors.New("timeout")
	store := new(MockStore)
	store.On("FindByName", mock.Anything, "Brahma").Return(nil, dbErr).Once()

	_, err := NewLookup(store).FindByName(context.Background(), "Brahma")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrNotFound)
}
