package v1

import (
	"log"

	"match-ton-alternance/internal/config"
	"match-ton-alternance/internal/database"
	"match-ton-alternance/internal/delivery/http/handler"
	"match-ton-alternance/internal/delivery/http/middleware"
	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/pkg/jwt"
	"match-ton-alternance/internal/repository"
	"match-ton-alternance/internal/usecase"
	"match-ton-alternance/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresProfileRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	swipeRepo := repository.NewPostgresSwipeRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	engine := compat.NewEngine(compat.DefaultWeights())

	scoringUC := usecase.NewScoringUsecase(profileRepo, jobRepo, engine)
	recommendationUC := usecase.NewRecommendationUsecase(
		profileRepo, jobRepo, engine, redisCache, logger,
		cfg.Matching.MatchThreshold, cfg.Matching.MaxResults, cfg.Matching.BatchWorkers,
	)
	swipeUC := usecase.NewSwipeUsecase(
		swipeRepo, matchRepo, profileRepo, jobRepo, engine, redisCache, logger,
		cfg.Matching.MatchThreshold,
	)

	protected := r.Group("", authMw.Middleware())

	handler.NewRecommendationHandler(recommendationUC).RegisterRoutes(protected)
	handler.NewCompatibilityHandler(scoringUC).RegisterRoutes(protected)
	handler.NewSwipeHandler(swipeUC).RegisterRoutes(protected)
	handler.NewMatchHandler(swipeUC).RegisterRoutes(protected)
}
