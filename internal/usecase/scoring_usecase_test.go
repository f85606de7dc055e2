package usecase

import (
	"context"
	"errors"
	"testing"

	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/domain/job"
	"match-ton-alternance/internal/repository"

	"github.com/google/uuid"
)

func TestScoreJob_UnknownJob(t *testing.T) {
	userID := uuid.New()
	uc := NewScoringUsecase(
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{},
		compat.NewEngine(compat.DefaultWeights()),
	)

	_, err := uc.ScoreJob(context.Background(), userID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestScoreJob_ProfileMissing(t *testing.T) {
	uc := NewScoringUsecase(
		&mockProfileRepo{profileErr: repository.ErrProfileNotFound},
		&mockJobRepo{},
		compat.NewEngine(compat.DefaultWeights()),
	)

	_, err := uc.ScoreJob(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestScoreJob_Success(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	uc := NewScoringUsecase(
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{byID: map[uuid.UUID]job.Posting{jobID: fixturePosting(jobID)}},
		compat.NewEngine(compat.DefaultWeights()),
	)

	res, err := uc.ScoreJob(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.TotalScore <= 0 || res.TotalScore > 100 {
		t.Fatalf("total out of range: %d", res.TotalScore)
	}
	if res.Level == "" {
		t.Fatalf("missing level")
	}
}
