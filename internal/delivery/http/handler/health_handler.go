package handler

import (
	"context"
	"time"

	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db    database.DB
	cache *cache.Redis
}

func NewHealthHandler(db database.DB, redisCache *cache.Redis) *HealthHandler {
	return &HealthHandler{db: db, cache: redisCache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

// Health reports liveness plus the state of each backing store. A degraded
// cache does not fail the endpoint; a dead database does.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	data := map[string]string{
		"database": "ok",
		"cache":    "ok",
	}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			data["database"] = "down"
			return response.Error(c, fiber.StatusServiceUnavailable, "service unavailable", data)
		}
	}
	if err := h.cache.Ping(ctx); err != nil {
		data["cache"] = "degraded"
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
