package auditlog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"
)

// MemoryRepository keeps audit logs in process memory, used together with the
// in-memory stock store.
type MemoryRepository struct {
	mu     sync.Mutex
	logs   []models.AuditLog
	nextID int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) PersistLog(_ context.Context, auditlog models.AuditLog, auditLogData interface{}) error {
	dataJSON, err := json.Marshal(auditLogData)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log data: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	auditlog.ID = r.nextID
	auditlog.DataRaw = string(dataJSON)
	auditlog.CreatedAt = time.Now()
	r.nextID++
	r.logs = append(r.logs, auditlog)

	return nil
}

func (r *MemoryRepository) GetResourceLog(_ context.Context, id int, resourceType string) ([]models.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var auditLogs []models.AuditLog
	for _, log := range r.logs {
		if log.ResourceID == id && log.ResourceType == resourceType {
			log.LoadFromDB()
			auditLogs = append(auditLogs, log)
		}
	}

	return auditLogs, nil
}
