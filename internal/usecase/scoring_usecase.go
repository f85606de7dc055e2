package usecase

import (
	"context"
	"errors"

	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInternal        = errors.New("internal error")
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrJobNotFound     = errors.New("job not found")
)

type ScoringUsecase interface {
	ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (compat.Result, error)
}

type Scoring struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	scorer   compat.Scorer
}

func NewScoringUsecase(profiles repository.ProfileRepository, jobs repository.JobRepository, scorer compat.Scorer) *Scoring {
	return &Scoring{profiles: profiles, jobs: jobs, scorer: scorer}
}

func (u *Scoring) ScoreJob(ctx context.Context, userID, jobID uuid.UUID) (compat.Result, error) {
	if userID == uuid.Nil {
		return compat.Result{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return compat.Result{}, ErrJobNotFound
	}

	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return compat.Result{}, ErrProfileNotFound
		}
		return compat.Result{}, ErrInternal
	}

	personality, err := u.profiles.FindPersonalityByUserID(ctx, userID)
	if err != nil {
		return compat.Result{}, ErrInternal
	}

	posting, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return compat.Result{}, ErrJobNotFound
		}
		return compat.Result{}, ErrInternal
	}

	res, err := u.scorer.Score(profile, personality, posting)
	if err != nil {
		if errors.Is(err, compat.ErrInvalidInput) {
			return compat.Result{}, ErrInvalidInput
		}
		return compat.Result{}, ErrInternal
	}
	return res, nil
}
