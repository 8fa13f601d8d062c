package stocks

import (
	"context"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"
)

// Store persists stock items. Lookups report a missing item as (nil, nil).
type Store interface {
	Insert(ctx context.Context, item models.StockItem) (*models.StockItem, error)
	FindByID(ctx context.Context, id int) (*models.StockItem, error)
	FindByName(ctx context.Context, name string) (*models.StockItem, error)
	FindAll(ctx context.Context) ([]models.StockItem, error)
	DeleteByID(ctx context.Context, id int) error

	// MutateQuantity reads the item, asks fn for the new quantity and writes
	// it back as one atomic step. When fn fails nothing is written and its
	// error is returned unchanged.
	MutateQuantity(ctx context.Context, id int, fn func(current models.StockItem) (int, error)) (*models.StockItem, error)
}
