package handler

import (
	"errors"

	"match-ton-alternance/internal/delivery/http/dto"
	"match-ton-alternance/internal/delivery/http/middleware"
	"match-ton-alternance/internal/pkg/response"
	"match-ton-alternance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.SwipeUsecase
}

func NewMatchHandler(uc usecase.SwipeUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/matches", h.ListMatches)
	r.Patch("/matches/:job_id/favorite", h.ToggleFavorite)
}

func (h *MatchHandler) ListMatches(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	matches, err := h.uc.ListMatches(c.Context(), userID, parseQueryInt(c, "limit", 0), parseQueryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchListResponse(matches))
}

func (h *MatchHandler) ToggleFavorite(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	m, err := h.uc.ToggleFavorite(c.Context(), userID, jobID)
	if err != nil {
		if errors.Is(err, usecase.ErrMatchNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Match not found", nil, err)
		}
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponse(m))
}
