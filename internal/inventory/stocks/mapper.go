package stocks

import (
	"github.com/Erasmo-Dev/Cervejaria/pkg/metadata"
	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// stockRecord is the row shape of the stock_items table.
type stockRecord struct {
	ID          int    `db:"id"`
	Name        string `db:"name"`
	Brand       string `db:"brand"`
	MaxCapacity int    `db:"max_capacity"`
	Quantity    int    `db:"quantity"`
	Category    string `db:"category"`
}

func toStockItem(req StockItemRequest, category metadata.Category) models.StockItem {
	return models.StockItem{
		Name:        req.Name,
		Brand:       req.Brand,
		MaxCapacity: *req.MaxCapacity,
		Quantity:    *req.Quantity,
		Category:    category,
	}
}

// toRecord builds the insert row; the id is left to the database.
func toRecord(item models.StockItem) goqu.Record {
	return goqu.Record{
		"name":         item.Name,
		"brand":        item.Brand,
		"max_capacity": item.MaxCapacity,
		"quantity":     item.Quantity,
		"category":     item.Category.String(),
	}
}

func fromRecord(record stockRecord) models.StockItem {
	return models.StockItem{
		ID:          record.ID,
		Name:        record.Name,
		Brand:       record.Brand,
		MaxCapacity: record.MaxCapacity,
		Quantity:    record.Quantity,
		Category:    metadata.Category(record.Category),
	}
}
