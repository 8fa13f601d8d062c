package models

import "github.com/Erasmo-Dev/Cervejaria/pkg/metadata"

type StockItem struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	MaxCapacity int               `json:"max_capacity"`
	Quantity    int               `json:"quantity"`
	Category    metadata.Category `json:"category"`
}

func (s *StockItem) CreateLogView() AuditLog {
	return AuditLog{
		ResourceID:   s.ID,
		ResourceType: "stock",
	}
}
