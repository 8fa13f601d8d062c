package stocks

import (
	"context"
	"errors"
	"net/http"

	"github.com/Erasmo-Dev/Cervejaria/pkg/auditlog"
	"github.com/Erasmo-Dev/Cervejaria/pkg/metadata"
	"github.com/Erasmo-Dev/Cervejaria/pkg/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StockService interface {
	Create(ctx context.Context, item models.StockItem) (*models.StockItem, error)
	Increment(ctx context.Context, id, amount int) (*models.StockItem, error)
	Decrement(ctx context.Context, id, amount int) (*models.StockItem, error)
	Delete(ctx context.Context, id int) error
}

type StockFinder interface {
	FindByName(ctx context.Context, name string) (*models.StockItem, error)
	ListAll(ctx context.Context) ([]models.StockItem, error)
}

type AuditLogger interface {
	Log(ctx context.Context, action string, data map[string]interface{}, item auditlog.Auditable)
	History(ctx context.Context, item auditlog.Auditable) ([]models.AuditLog, error)
}

type StockHandler struct {
	service  StockService
	finder   StockFinder
	auditLog AuditLogger
	logger   *zap.Logger
}

func NewStockHandler(s StockService, f StockFinder, a AuditLogger, logger *zap.Logger) *StockHandler {
	return &StockHandler{
		service:  s,
		finder:   f,
		auditLog: a,
		logger:   logger,
	}
}

func (h *StockHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/items", h.CreateStock)
	router.GET("/items", h.GetStocks)
	router.GET("/items/:name", h.GetStockByName)
	router.GET("/items/:name/history", h.GetStockHistory)
	router.DELETE("/items/:id", h.DeleteStock)
	router.PATCH("/items/:id/increment", h.IncrementStock)
	router.PATCH("/items/:id/decrement", h.DecrementStock)
}

func (h *StockHandler) CreateStock(c *gin.Context) {
	var stockRequest StockItemRequest

	if err := c.ShouldBindJSON(&stockRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	category, err := metadata.NewCategory(stockRequest.Category)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid stock category",
			"details": err.Error(),
		})
		return
	}

	stockItem, err := h.service.Create(c.Request.Context(), toStockItem(stockRequest, category))
	if err != nil {
		h.abortWithError(c, err, "Failed to create stock")
		return
	}

	h.auditLog.Log(
		c.Request.Context(),
		"create",
		map[string]interface{}{
			"quantity":     stockItem.Quantity,
			"max_capacity": stockItem.MaxCapacity,
			"msg":          "Register stock item in brewery",
		},
		stockItem,
	)

	c.JSON(http.StatusCreated, stockItem)
}

func (h *StockHandler) GetStockByName(c *gin.Context) {
	var uri stockItemNameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid URI parameters", "details": err.Error()})
		return
	}

	stockItem, err := h.finder.FindByName(c.Request.Context(), uri.Name)
	if err != nil {
		h.abortWithError(c, err, "Failed to fetch stock item")
		return
	}

	c.JSON(http.StatusOK, stockItem)
}

func (h *StockHandler) GetStocks(c *gin.Context) {
	stockItems, err := h.finder.ListAll(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err, "Failed to fetch stock items")
		return
	}

	c.JSON(http.StatusOK, stockItems)
}

func (h *StockHandler) GetStockHistory(c *gin.Context) {
	var uri stockItemNameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid URI parameters", "details": err.Error()})
		return
	}

	stockItem, err := h.finder.FindByName(c.Request.Context(), uri.Name)
	if err != nil {
		h.abortWithError(c, err, "Failed to fetch stock item")
		return
	}

	stockLogs, err := h.auditLog.History(c.Request.Context(), stockItem)
	if err != nil {
		h.abortWithError(c, err, "Failed to fetch stock history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stock":     stockItem,
		"stockLogs": stockLogs,
	})
}

func (h *StockHandler) DeleteStock(c *gin.Context) {
	var uri stockItemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock ID", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		h.abortWithError(c, err, "Failed to delete stock")
		return
	}

	h.auditLog.Log(c.Request.Context(), "delete", map[string]interface{}{"msg": "Remove stock item from brewery"}, &models.StockItem{ID: uri.ID})

	c.Status(http.StatusNoContent)
}

func (h *StockHandler) IncrementStock(c *gin.Context) {
	h.changeQuantity(c, "increment", h.service.Increment)
}

func (h *StockHandler) DecrementStock(c *gin.Context) {
	h.changeQuantity(c, "decrement", h.service.Decrement)
}

func (h *StockHandler) changeQuantity(c *gin.Context, action string, change func(ctx context.Context, id, amount int) (*models.StockItem, error)) {
	var uri stockItemURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stock ID", "details": err.Error()})
		return
	}

	var quantityRequest QuantityRequest
	if err := c.ShouldBindJSON(&quantityRequest); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	stockItem, err := change(c.Request.Context(), uri.ID, quantityRequest.Amount)
	if err != nil {
		h.abortWithError(c, err, "Unable to update stock")
		return
	}

	h.auditLog.Log(
		c.Request.Context(),
		action,
		map[string]interface{}{
			"amount":   quantityRequest.Amount,
			"quantity": stockItem.Quantity,
		},
		stockItem,
	)

	c.JSON(http.StatusOK, stockItem)
}

func (h *StockHandler) abortWithError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Stock item not found", "details": err.Error()})
	case errors.Is(err, ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Stock with same name already registered", "details": err.Error()})
	case errors.Is(err, ErrCapacityExceeded):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Stock capacity exceeded", "details": err.Error()})
	default:
		h.logger.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
