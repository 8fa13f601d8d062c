package stocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"go.opentelemetry.io/otel/attribute"
)

// DecrementPolicy decides the quantity left after a decrement.
type DecrementPolicy string

const (
	// DecrementLegacy keeps the historical arithmetic: the deficit
	// amount-quantity is subtracted from the quantity, allowed while the
	// deficit does not exceed the quantity. The result is 2*quantity-amount.
	DecrementLegacy DecrementPolicy = "legacy"
	// DecrementStrict subtracts amount, allowed while amount <= quantity.
	DecrementStrict DecrementPolicy = "strict"
)

func (p DecrementPolicy) apply(quantity, amount int) (int, bool) {
	switch p {
	case DecrementStrict:
		if amount <= quantity {
			return quantity - amount, true
		}
	default:
		deficit := amount - quantity
		if deficit <= quantity {
			return quantity - deficit, true
		}
	}
	return 0, false
}

// Engine owns every write to stock items: creation with a unique name,
// bounded increment/decrement of the quantity and deletion.
type Engine struct {
	store  Store
	lookup *Lookup
	policy DecrementPolicy
}

func NewEngine(store Store, policy DecrementPolicy) *Engine {
	if policy == "" {
		policy = DecrementLegacy
	}
	return &Engine{
		store:  store,
		lookup: NewLookup(store),
		policy: policy,
	}
}

// Create persists item as given. Quantity and capacity are not checked
// against each other here.
func (e *Engine) Create(ctx context.Context, item models.StockItem) (created *models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Engine/Create", attribute.String("stock.name", item.Name))
	defer func() { endSpan(span, err) }()

	existing, err := e.store.FindByName(ctx, item.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check stock item name: %w", err)
	}
	if existing != nil {
		return nil, &AlreadyExistsError{Name: item.Name}
	}

	created, err = e.store.Insert(ctx, item)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, &AlreadyExistsError{Name: item.Name}
		}
		return nil, fmt.Errorf("failed to create stock item: %w", err)
	}
	span.SetAttributes(attribute.Int("stock.id", created.ID))

	return created, nil
}

func (e *Engine) Increment(ctx context.Context, id, amount int) (item *models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Engine/Increment", attribute.Int("stock.id", id), attribute.Int("stock.amount", amount))
	defer func() { endSpan(span, err) }()

	return e.mutate(ctx, id, func(current models.StockItem) (int, error) {
		incremented := current.Quantity + amount
		if incremented > current.MaxCapacity {
			return 0, &CapacityExceededError{ID: id, Amount: amount}
		}
		return incremented, nil
	})
}

func (e *Engine) Decrement(ctx context.Context, id, amount int) (item *models.StockItem, err error) {
	ctx, span := startSpan(ctx, "stocks.Engine/Decrement",
		attribute.Int("stock.id", id),
		attribute.Int("stock.amount", amount),
		attribute.String("stock.decrement_policy", string(e.policy)),
	)
	defer func() { endSpan(span, err) }()

	return e.mutate(ctx, id, func(current models.StockItem) (int, error) {
		decremented, ok := e.policy.apply(current.Quantity, amount)
		if !ok {
			return 0, &CapacityExceededError{ID: id, Amount: amount}
		}
		return decremented, nil
	})
}

// Delete removes the item once its existence is confirmed.
func (e *Engine) Delete(ctx context.Context, id int) (err error) {
	ctx, span := startSpan(ctx, "stocks.Engine/Delete", attribute.Int("stock.id", id))
	defer func() { endSpan(span, err) }()

	if _, err = e.lookup.FindByID(ctx, id); err != nil {
		return err
	}
	if err = e.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete stock item: %w", err)
	}

	return nil
}

func (e *Engine) mutate(ctx context.Context, id int, fn func(current models.StockItem) (int, error)) (*models.StockItem, error) {
	item, err := e.store.MutateQuantity(ctx, id, fn)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update stock quantity: %w", err)
	}
	if item == nil {
		return nil, notFoundByID(id)
	}

	return item, nil
}
