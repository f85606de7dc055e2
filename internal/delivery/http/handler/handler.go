package handler

import (
	"errors"
	"strconv"

	"match-ton-alternance/internal/delivery/http/middleware"
	"match-ton-alternance/internal/pkg/response"
	"match-ton-alternance/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func userIDFromCtx(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, nil
}

func jobIDParam(c fiber.Ctx) (uuid.UUID, error) {
	jobID, err := uuid.Parse(c.Params("job_id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}
	return jobID, nil
}

// mapUsecaseError translates the usecase sentinels shared by every endpoint.
// Endpoint-specific sentinels are handled before falling through to this.
func mapUsecaseError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
