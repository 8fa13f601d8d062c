package stocks

import (
	"context"
	"fmt"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"go.opentelemetry.io/otel/attribute"
)

// Lookup resolves stock items by name or id, turning store misses into
// NotFoundError.
type Lookup struct {
	store Store
}

func NewLookup(store Store) *Lookup {
	return &Lookup{store: store}
}

func (l *Lookup) FindByName(ctx context.Context, name string) (item *models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Lookup/FindByName", attribute.String("stock.name", name))
	defer func() { endSpan(span, err) }()

	item, err = l.store.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to find stock item by name: %w", err)
	}
	if item == nil {
		return nil, notFoundByName(name)
	}

	return item, nil
}

func (l *Lookup) FindByID(ctx context.Context, id int) (item *models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Lookup/FindByID", attribute.Int("stock.id", id))
	defer func() { endSpan(span, err) }()

	item, err = l.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find stock item by id: %w", err)
	}
	if item == nil {
		return nil, notFoundByID(id)
	}

	return item, nil
}

// ListAll returns every stock item in store order. It never returns a nil
// slice on success.
func (l *Lookup) ListAll(ctx context.Context) (items []models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Lookup/ListAll")
	defer func() { endSpan(span, err) }()

	items, err = l.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	if items == nil {
		items = []models.StockItem{}
	}
	span.SetAttributes(attribute.Int("stock.count", len(items)))

	return items, nil
}
