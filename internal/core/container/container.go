package container

import (
	"database/sql"
	"fmt"

	auditLogRepo "github.com/Erasmo-Dev/Cervejaria/internal/auditlog"
	"github.com/Erasmo-Dev/Cervejaria/internal/core/config"
	"github.com/Erasmo-Dev/Cervejaria/internal/inventory/category"
	"github.com/Erasmo-Dev/Cervejaria/internal/inventory/stocks"
	"github.com/Erasmo-Dev/Cervejaria/internal/middleware"
	"github.com/Erasmo-Dev/Cervejaria/internal/rate_limiter"
	"github.com/Erasmo-Dev/Cervejaria/internal/repository"
	"github.com/Erasmo-Dev/Cervejaria/pkg/auditlog"

	"go.uber.org/zap"
)

type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	Repository      *repository.Repository
	AuditLog        *auditlog.Auditlog
	Engine          *stocks.Engine
	Lookup          *stocks.Lookup
	StockHandler    *stocks.StockHandler
	CategoryHandler *category.CategoryHandler
	Health          *middleware.Health
	RateLimiter     *rate_limiter.RateLimiter
}

// NewAppContainer wires the application. db may be nil when the memory store
// driver is configured.
func NewAppContainer(cfg *config.Config, db *sql.DB, logger *zap.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
		Health: middleware.NewHealth(cfg.Version),
	}

	var store stocks.Store
	var auditRepository auditlog.Repository

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store = stocks.NewMemoryStore()
		auditRepository = auditLogRepo.NewMemoryRepository()
	case config.StoreDriverPostgres:
		if db == nil {
			return nil, fmt.Errorf("store driver %q requires a database connection", cfg.StoreDriver)
		}
		c.Repository = repository.NewRepository(db)
		store = stocks.NewRepository(c.Repository)
		auditRepository = auditLogRepo.NewRepository(c.Repository)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	c.AuditLog = auditlog.NewAuditLog(auditRepository, logger)
	c.Lookup = stocks.NewLookup(store)
	c.Engine = stocks.NewEngine(store, stocks.DecrementPolicy(cfg.DecrementPolicy))
	c.StockHandler = stocks.NewStockHandler(c.Engine, c.Lookup, c.AuditLog, logger)
	c.CategoryHandler = category.NewCategoryHandler()

	if cfg.RateLimit > 0 {
		c.RateLimiter = rate_limiter.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	}

	return c, nil
}

func (c *Container) Close() {
	if c.RateLimiter != nil {
		c.RateLimiter.Stop()
	}
}
