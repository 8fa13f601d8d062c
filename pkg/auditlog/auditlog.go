package auditlog

import (
	"context"

	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"go.uber.org/zap"
)

type Repository interface {
	PersistLog(ctx context.Context, auditLog models.AuditLog, data interface{}) error
	GetResourceLog(ctx context.Context, id int, resourceType string) ([]models.AuditLog, error)
}

type Auditable interface {
	CreateLogView() models.AuditLog
}

type Auditlog struct {
	r      Repository
	logger *zap.Logger
}

func NewAuditLog(repository Repository, logger *zap.Logger) *Auditlog {
	return &Auditlog{r: repository, logger: logger}
}

// Log records action on item. A failed write is logged and otherwise
// ignored.
func (a *Auditlog) Log(ctx context.Context, action string, data map[string]interface{}, item Auditable) {
	auditLog := item.CreateLogView()
	auditLog.Action = action

	if err := a.r.PersistLog(ctx, auditLog, data); err != nil {
		a.logger.Warn("Unable to create AuditLog entry",
			zap.Int("resource_id", auditLog.ResourceID),
			zap.String("action", action),
			zap.Error(err),
		)
		return
	}

	a.logger.Debug("Created AuditLog entry",
		zap.Int("resource_id", auditLog.ResourceID),
		zap.String("action", action),
	)
}

func (a *Auditlog) History(ctx context.Context, item Auditable) ([]models.AuditLog, error) {
	view := item.CreateLogView()
	logs, err := a.r.GetResourceLog(ctx, view.ResourceID, view.ResourceType)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	return logs, nil
}
