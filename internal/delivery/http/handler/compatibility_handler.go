package handler

import (
	"match-ton-alternance/internal/delivery/http/dto"
	"match-ton-alternance/internal/pkg/response"
	"match-ton-alternance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompatibilityHandler struct {
	uc usecase.ScoringUsecase
}

func NewCompatibilityHandler(uc usecase.ScoringUsecase) *CompatibilityHandler {
	return &CompatibilityHandler{uc: uc}
}

func (h *CompatibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/:job_id/compatibility", h.GetCompatibility)
}

func (h *CompatibilityHandler) GetCompatibility(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	res, err := h.uc.ScoreJob(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompatibilityResponse(jobID, res))
}
