package routes

import (
	"log"

	"match-ton-alternance/internal/config"
	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: redisCache, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.cfg, r.db, r.cache, r.hub, r.logger)
}
