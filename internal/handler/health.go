package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Payphone-Digital/roster/internal/constants"
	"github.com/Payphone-Digital/roster/pkg/circuit"
	"github.com/Payphone-Digital/roster/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is anything whose connectivity can be probed, such as *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger probes the snapshot cache backend.
type CachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	source  string
	db      Pinger
	cache   CachePinger
	breaker *circuit.Breaker
}

type HealthCheckResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]HealthCheck `json:"checks"`
}

type HealthCheck struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// poolStatser is implemented by cache clients that expose pool counters.
type poolStatser interface {
	PoolStats() map[string]interface{}
}

// NewHealthHandler wires the dependencies to probe. db, cache and breaker
// may be nil when the corresponding component is not in use.
func NewHealthHandler(source string, db Pinger, cache CachePinger, breaker *circuit.Breaker) *HealthHandler {
	return &HealthHandler{
		source:  source,
		db:      db,
		cache:   cache,
		breaker: breaker,
	}
}

// HealthCheck performs comprehensive health check
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := HealthCheckResponse{
		Status:    "healthy",
		Version:   constants.AppVersion,
		Timestamp: time.Now(),
		Checks:    make(map[string]HealthCheck),
	}

	storeStatus := h.checkStore(ctx)
	response.Checks["store"] = storeStatus
	if storeStatus.Status == "unhealthy" {
		response.Status = "unhealthy"
	}

	// Cache is optional, a failure only degrades
	cacheStatus := h.checkCache(ctx)
	response.Checks["cache"] = cacheStatus
	if cacheStatus.Status == "unhealthy" && response.Status == "healthy" {
		response.Status = "degraded"
	}

	if h.breaker != nil {
		counts := h.breaker.Counts()
		check := HealthCheck{Status: "healthy", Message: "circuit " + counts.State.String()}
		if counts.State == circuit.StateOpen {
			check.Status = "unhealthy"
			response.Status = "unhealthy"
		}
		response.Checks["breaker"] = check
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	logger.GetLogger().Debug("Health check performed",
		zap.String("overall_status", response.Status),
		zap.Int("status_code", statusCode),
	)

	c.JSON(statusCode, response)
}

// BasicHealth returns a simple health check (for load balancers)
func (h *HealthHandler) BasicHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"version":   constants.AppVersion,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) HealthCheck {
	if h.db == nil {
		return HealthCheck{
			Status:  "healthy",
			Message: fmt.Sprintf("%s dataset", h.source),
		}
	}

	if err := h.db.PingContext(ctx); err != nil {
		logger.GetLogger().Error("Database ping failed", zap.Error(err))
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Database ping failed",
		}
	}

	return HealthCheck{
		Status:  "healthy",
		Message: fmt.Sprintf("%s connection is healthy", h.source),
	}
}

func (h *HealthHandler) checkCache(ctx context.Context) HealthCheck {
	if h.cache == nil {
		return HealthCheck{
			Status:  "disabled",
			Message: "Redis cache is disabled",
		}
	}

	if err := h.cache.Ping(ctx); err != nil {
		logger.GetLogger().Warn("Redis ping failed", zap.Error(err))
		return HealthCheck{
			Status:  "unhealthy",
			Message: "Redis ping failed",
		}
	}

	check := HealthCheck{
		Status:  "healthy",
		Message: "Redis connection is healthy",
	}
	if stats, ok := h.cache.(poolStatser); ok {
		check.Details = stats.PoolStats()
	}
	return check
}
