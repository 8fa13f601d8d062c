package stocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/Erasmo-Dev/Cervejaria/internal/repository"
	custom_error "github.com/Erasmo-Dev/Cervejaria/pkg/errors"
	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"
)

const stockItemsTable = "stock_items"

var stockColumns = []interface{}{"id", "name", "brand", "max_capacity", "quantity", "category"}

// StockRepository is the PostgreSQL Store.
type StockRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *StockRepository {
	return &StockRepository{repository: r}
}

func (r *StockRepository) Insert(ctx context.Context, item models.StockItem) (*models.StockItem, error) {
	query := r.repository.GoquDBWrapper.Insert(stockItemsTable).
		Rows(toRecord(item)).
		Returning("id")

	if _, err := query.Executor().ScanValContext(ctx, &item.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			dbErr := custom_error.WrapDBError("Duplicate stock item name", string(pqErr.Code))
			if _, ok := dbErr.(*custom_error.UniqueViolationError); ok {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, dbErr.Error())
			}
			return nil, dbErr
		}
		return nil, fmt.Errorf("failed to insert stock item record: %w", err)
	}

	return &item, nil
}

func (r *StockRepository) FindByID(ctx context.Context, id int) (*models.StockItem, error) {
	return r.findOne(ctx, goqu.Ex{"id": id})
}

func (r *StockRepository) FindByName(ctx context.Context, name string) (*models.StockItem, error) {
	return r.findOne(ctx, goqu.Ex{"name": name})
}

func (r *StockRepository) FindAll(ctx context.Context) ([]models.StockItem, error) {
	var records []stockRecord
	query := r.repository.GoquDBWrapper.
		From(stockItemsTable).
		Select(stockColumns...).
		Order(goqu.I("id").Asc())

	if err := query.ScanStructsContext(ctx, &records); err != nil {
		return nil, fmt.Errorf("unable to select stock items from database: %w", err)
	}

	items := make([]models.StockItem, 0, len(records))
	for _, record := range records {
		items = append(items, fromRecord(record))
	}

	return items, nil
}

func (r *StockRepository) DeleteByID(ctx context.Context, id int) error {
	query := r.repository.GoquDBWrapper.
		Delete(stockItemsTable).
		Where(goqu.Ex{"id": id})

	if _, err := query.Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to delete stock item %d: %w", id, err)
	}

	return nil
}

// MutateQuantity locks the row with SELECT ... FOR UPDATE for the duration of
// the transaction, so concurrent mutations of one item are serialized.
func (r *StockRepository) MutateQuantity(ctx context.Context, id int, fn func(current models.StockItem) (int, error)) (*models.StockItem, error) {
	var updated *models.StockItem

	err := repository.WithTransaction(ctx, r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var record stockRecord
		found, err := tx.From(stockItemsTable).
			Select(stockColumns...).
			Where(goqu.Ex{"id": id}).
			ForUpdate(exp.Wait).
			ScanStructContext(ctx, &record)
		if err != nil {
			return fmt.Errorf("unable to lock stock item %d: %w", id, err)
		}
		if !found {
			return nil
		}

		item := fromRecord(record)
		quantity, err := fn(item)
		if err != nil {
			return err
		}

		_, err = tx.Update(stockItemsTable).
			Set(goqu.Record{"quantity": quantity}).
			Where(goqu.Ex{"id": id}).
			Executor().
			ExecContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to update stock item %d quantity: %w", id, err)
		}

		item.Quantity = quantity
		updated = &item
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *StockRepository) findOne(ctx context.Context, where goqu.Ex) (*models.StockItem, error) {
	var record stockRecord
	query := r.repository.GoquDBWrapper.
		From(stockItemsTable).
		Select(stockColumns...).
		Where(where)

	found, err := query.ScanStructContext(ctx, &record)
	if err != nil {
		return nil, fmt.Errorf("unable to select stock item from database: %w", err)
	}
	if !found {
		return nil, nil
	}

	item := fromRecord(record)
	return &item, nil
}
