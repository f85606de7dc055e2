package handler

import (
	"errors"

	"match-ton-alternance/internal/delivery/http/dto"
	"match-ton-alternance/internal/delivery/http/middleware"
	"match-ton-alternance/internal/domain/swipe"
	"match-ton-alternance/internal/pkg/response"
	"match-ton-alternance/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SwipeHandler struct {
	uc usecase.SwipeUsecase
}

func NewSwipeHandler(uc usecase.SwipeUsecase) *SwipeHandler {
	return &SwipeHandler{uc: uc}
}

func (h *SwipeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/jobs/:job_id/swipe", h.Swipe)
	r.Get("/swipes/history", h.GetHistory)
}

func (h *SwipeHandler) Swipe(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var req dto.SwipeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	rec, err := h.uc.Swipe(c.Context(), userID, usecase.SwipeParams{
		JobID:    jobID,
		Action:   swipe.Action(req.Action),
		Score:    req.MatchScore,
		Feedback: req.Feedback,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicateDecision) {
			return middleware.NewAppError(fiber.StatusConflict, "Decision already recorded", nil, err)
		}
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewSwipeResponse(rec))
}

func (h *SwipeHandler) GetHistory(c fiber.Ctx) error {
	userID, err := userIDFromCtx(c)
	if err != nil {
		return err
	}

	records, err := h.uc.ListHistory(c.Context(), userID, parseQueryInt(c, "limit", 0), parseQueryInt(c, "offset", 0))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewSwipeHistoryResponse(records))
}
