package handler

import (
	"match-ton-alternance/internal/delivery/http/dto"
	"match-ton-alternance/internal/pkg/response"
	"match-ton-alternance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	params := usecase.RecommendationParams{
		Limit:    parseQueryInt(c, "limit", 0),
		MinScore: parseQueryInt(c, "min_score", 0),
	}

	list, err := h.uc.GetPersonalizedMatches(c.Context(), userID, params)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewRecommendationListResponse(list))
}
