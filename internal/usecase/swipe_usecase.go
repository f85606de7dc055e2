package usecase

import (
	"context"
	"errors"
	"log"

	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/domain/swipe"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/repository"
	"match-ton-alternance/internal/ws"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateDecision: the pair was already decided. The first decision
	// stands, no overwrite.
	ErrDuplicateDecision = errors.New("decision already recorded")
	ErrMatchNotFound     = errors.New("match not found")
)

type SwipeParams struct {
	JobID    uuid.UUID
	Action   swipe.Action
	Score    int
	Feedback string
}

type SwipeUsecase interface {
	Swipe(ctx context.Context, userID uuid.UUID, params SwipeParams) (swipe.Record, error)
	ToggleFavorite(ctx context.Context, userID, jobID uuid.UUID) (swipe.Match, error)
	ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Match, error)
	ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Record, error)
}

type Swiper struct {
	swipes   repository.SwipeRepository
	matches  repository.MatchRepository
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	scorer   compat.Scorer
	cache    *cache.Redis
	logger   *log.Logger

	matchThreshold int
}

func NewSwipeUsecase(
	swipes repository.SwipeRepository,
	matches repository.MatchRepository,
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	scorer compat.Scorer,
	redisCache *cache.Redis,
	logger *log.Logger,
	matchThreshold int,
) *Swiper {
	if matchThreshold <= 0 {
		matchThreshold = 60
	}
	return &Swiper{
		swipes:         swipes,
		matches:        matches,
		profiles:       profiles,
		jobs:           jobs,
		scorer:         scorer,
		cache:          redisCache,
		logger:         logger,
		matchThreshold: matchThreshold,
	}
}

// Swipe records the decision for the pair and, when the action and score
// qualify, promotes it into a Match carrying the sub-score breakdown. The
// uniqueness of the pair is enforced by the storage constraint, so the
// insert either lands once or reports a duplicate.
func (u *Swiper) Swipe(ctx context.Context, userID uuid.UUID, params SwipeParams) (swipe.Record, error) {
	if userID == uuid.Nil {
		return swipe.Record{}, ErrUnauthorized
	}
	if params.JobID == uuid.Nil || !params.Action.Valid() {
		return swipe.Record{}, ErrInvalidInput
	}

	score := params.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	posting, err := u.jobs.FindByID(ctx, params.JobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return swipe.Record{}, ErrJobNotFound
		}
		return swipe.Record{}, ErrInternal
	}

	rec, err := u.swipes.Insert(ctx, repository.SwipeInsert{
		UserID:     userID,
		JobID:      params.JobID,
		Action:     params.Action,
		MatchScore: score,
		Feedback:   params.Feedback,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateSwipe) {
			return swipe.Record{}, ErrDuplicateDecision
		}
		return swipe.Record{}, ErrInternal
	}

	if err := u.cache.InvalidateRecommendations(ctx, userID); err != nil && u.logger != nil {
		u.logger.Printf("recommendations cache invalidation failed | user_id=%s err=%v", userID, err)
	}

	if params.Action.Qualifying() && score >= u.matchThreshold {
		if err := u.promoteToMatch(ctx, userID, posting.ID, score); err != nil {
			return swipe.Record{}, ErrInternal
		}
	}

	return rec, nil
}

// promoteToMatch re-scores the pair so the persisted Match carries the
// sub-score breakdown, not just the decision-time total.
func (u *Swiper) promoteToMatch(ctx context.Context, userID, jobID uuid.UUID, decisionScore int) error {
	upsert := repository.MatchUpsert{
		UserID:     userID,
		JobID:      jobID,
		MatchScore: decisionScore,
	}

	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err == nil {
		personality, perr := u.profiles.FindPersonalityByUserID(ctx, userID)
		if perr == nil {
			posting, jerr := u.jobs.FindByID(ctx, jobID)
			if jerr == nil {
				if res, serr := u.scorer.Score(profile, personality, posting); serr == nil {
					upsert.SkillsScore = res.Scores.Skills
					upsert.PersonalityScore = res.Scores.Personality
					upsert.LocationScore = res.Scores.Location
					upsert.ExperienceScore = res.Scores.Experience
				}
			}
		}
	} else if !errors.Is(err, repository.ErrProfileNotFound) {
		return err
	}

	if err := u.matches.Upsert(ctx, upsert); err != nil {
		return err
	}

	ws.NotifyMatchCreated(userID, jobID, decisionScore, compat.CompatibilityLevel(decisionScore))
	return nil
}

func (u *Swiper) ToggleFavorite(ctx context.Context, userID, jobID uuid.UUID) (swipe.Match, error) {
	if userID == uuid.Nil {
		return swipe.Match{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return swipe.Match{}, ErrInvalidInput
	}

	m, err := u.matches.ToggleFavorite(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrMatchNotFound) {
			return swipe.Match{}, ErrMatchNotFound
		}
		return swipe.Match{}, ErrInternal
	}
	return m, nil
}

func (u *Swiper) ListMatches(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Match, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.matches.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Swiper) ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int) ([]swipe.Record, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.swipes.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}
