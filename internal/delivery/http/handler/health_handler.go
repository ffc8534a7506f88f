package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger is anything with a health check, typically the database and redis
// connections.
type Pinger interface {
	Health(ctx context.Context) error
}

// HealthHandler reports service liveness and dependency health.
type HealthHandler struct {
	db     Pinger
	cache  Pinger
	logger *zap.Logger
}

func NewHealthHandler(db, cache Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	deps := fiber.Map{}

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("Database health check failed", zap.Error(err))
		deps["database"] = "unhealthy"
		status = fiber.StatusServiceUnavailable
	} else {
		deps["database"] = "healthy"
	}

	if h.cache != nil {
		if err := h.cache.Health(ctx); err != nil {
			h.logger.Warn("Redis health check failed", zap.Error(err))
			deps["redis"] = "unhealthy"
		} else {
			deps["redis"] = "healthy"
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"status":       statusText(status),
		"dependencies": deps,
		"time":         time.Now(),
	})
}

func statusText(status int) string {
	if status == fiber.StatusOK {
		return "healthy"
	}
	return "unhealthy"
}
