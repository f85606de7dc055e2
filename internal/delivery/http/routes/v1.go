package routes

import (
	"log"

	"match-ton-alternance/internal/config"
	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/infrastructure/cache"
	v1 "match-ton-alternance/internal/delivery/http/routes/v1"
	"match-ton-alternance/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redisCache, hub, logger)
}
