package middleware

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCacheDuration = 5 * time.Second

// HealthStatus reprezentuje status zdrowia aplikacji
type HealthStatus struct {
	Status      string    `json:"status"`
	LastChecked time.Time `json:"last_checked"`
	Uptime      string    `json:"uptime"`
	Version     string    `json:"version"`
}

// Health serves the health endpoint and caches the rendered body briefly.
type Health struct {
	mu               sync.Mutex
	status           HealthStatus
	startTime        time.Time
	lastResponse     []byte
	lastResponseTime time.Time
}

func NewHealth(version string) *Health {
	now := time.Now()
	return &Health{
		status: HealthStatus{
			Status:      "ok",
			LastChecked: now,
			Uptime:      "0s",
			Version:     version,
		},
		startTime: now,
	}
}

func (h *Health) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.lastResponse != nil && time.Since(h.lastResponseTime) < healthCacheDuration {
			c.Data(http.StatusOK, "application/json; charset=utf-8", h.lastResponse)
			return
		}

		h.status.Uptime = time.Since(h.startTime).Round(time.Second).String()
		h.status.LastChecked = time.Now()

		response, err := json.Marshal(h.status)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Unable to render health status"})
			return
		}
		h.lastResponse = response
		h.lastResponseTime = h.status.LastChecked

		c.Data(http.StatusOK, "application/json; charset=utf-8", response)
	}
}

// UpdateStatus aktualizuje status zdrowia aplikacji
func (h *Health) UpdateStatus(status string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.status.Status = status
	h.status.LastChecked = time.Now()
	h.lastResponse = nil // Invalidate cache
}
