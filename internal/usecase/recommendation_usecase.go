package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/domain/job"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/repository"
	"match-ton-alternance/internal/worker"

	"github.com/google/uuid"
)

type RecommendationParams struct {
	Limit    int
	MinScore int
}

type RecommendationItem struct {
	JobID        uuid.UUID `json:"job_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	RemoteWork   bool      `json:"remote_work"`
	PostedAt     time.Time `json:"posted_at"`

	Score           int              `json:"compatibility_score"`
	Level           string           `json:"compatibility_level"`
	Scores          compat.Breakdown `json:"detailed_scores"`
	Reasons         []string         `json:"match_reasons"`
	Recommendations []string         `json:"recommendations"`
}

type RecommendationList struct {
	Items               []RecommendationItem `json:"matches"`
	TotalMatches        int                  `json:"total_matches"`
	ProfileCompleteness int                  `json:"profile_completeness"`
}

type RecommendationUsecase interface {
	GetPersonalizedMatches(ctx context.Context, userID uuid.UUID, params RecommendationParams) (RecommendationList, error)
}

type Recommendation struct {
	profiles repository.ProfileRepository
	jobs     repository.JobRepository
	scorer   compat.Scorer
	cache    *cache.Redis
	logger   *log.Logger

	minScore   int
	maxResults int
	workers    int
}

// fetchLimit bounds how many active postings one recommendation pass scores.
const fetchLimit = 100

func NewRecommendationUsecase(
	profiles repository.ProfileRepository,
	jobs repository.JobRepository,
	scorer compat.Scorer,
	redisCache *cache.Redis,
	logger *log.Logger,
	minScore, maxResults, workers int,
) *Recommendation {
	if minScore <= 0 {
		minScore = 60
	}
	if maxResults <= 0 {
		maxResults = 20
	}
	if workers <= 0 {
		workers = 8
	}
	return &Recommendation{
		profiles:   profiles,
		jobs:       jobs,
		scorer:     scorer,
		cache:      redisCache,
		logger:     logger,
		minScore:   minScore,
		maxResults: maxResults,
		workers:    workers,
	}
}

func (u *Recommendation) GetPersonalizedMatches(ctx context.Context, userID uuid.UUID, params RecommendationParams) (RecommendationList, error) {
	if userID == uuid.Nil {
		return RecommendationList{}, ErrUnauthorized
	}

	var cached RecommendationList
	if hit, err := u.cache.GetJSON(ctx, cache.RecommendationsKey(userID), &cached); err == nil && hit {
		return cached, nil
	}

	profile, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return RecommendationList{}, ErrProfileNotFound
		}
		return RecommendationList{}, ErrInternal
	}

	personality, err := u.profiles.FindPersonalityByUserID(ctx, userID)
	if err != nil {
		return RecommendationList{}, ErrInternal
	}

	postings, err := u.jobs.ListActive(ctx, fetchLimit, 0)
	if err != nil {
		return RecommendationList{}, ErrInternal
	}

	minScore := params.MinScore
	if minScore <= 0 {
		minScore = u.minScore
	}
	limit := params.Limit
	if limit <= 0 || limit > u.maxResults {
		limit = u.maxResults
	}

	results := u.scoreConcurrently(ctx, profile, personality, postings)

	items := make([]RecommendationItem, 0, len(results))
	for i, res := range results {
		if res == nil || res.TotalScore < minScore {
			continue
		}
		p := postings[i]
		items = append(items, RecommendationItem{
			JobID:           p.ID,
			Title:           p.Title,
			Company:         p.Company,
			Location:        p.Location,
			ContractType:    p.ContractType,
			RemoteWork:      p.RemoteWork,
			PostedAt:        p.PostedAt,
			Score:           res.TotalScore,
			Level:           res.Level,
			Scores:          res.Scores,
			Reasons:         res.Reasons,
			Recommendations: res.Recommendations,
		})
	}

	// Deterministic ranking: best score first, recency breaks ties.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].PostedAt.After(items[j].PostedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	list := RecommendationList{
		Items:               items,
		TotalMatches:        len(items),
		ProfileCompleteness: profileCompleteness(profile, personality),
	}

	if err := u.cache.SetJSON(ctx, cache.RecommendationsKey(userID), list, 0); err != nil && u.logger != nil {
		u.logger.Printf("recommendations cache write failed | user_id=%s err=%v", userID, err)
	}

	return list, nil
}

// scoreConcurrently fans the postings out over the worker pool. Each task
// writes only its own slot, so no locking is needed; scoring is pure
// computation and never blocks on I/O.
func (u *Recommendation) scoreConcurrently(ctx context.Context, profile candidate.Profile, personality *candidate.PersonalityProfile, postings []job.Posting) []*compat.Result {
	results := make([]*compat.Result, len(postings))

	pool := worker.NewPool(u.workers, len(postings))
	for i := range postings {
		i := i
		pool.Submit(func(context.Context) error {
			res, err := u.scorer.Score(profile, personality, postings[i])
			if err != nil {
				return err
			}
			results[i] = &res
			return nil
		})
	}
	pool.Close()

	for res := range pool.Run(ctx) {
		if res.Err != nil && u.logger != nil {
			u.logger.Printf("scoring task failed | err=%v", res.Err)
		}
	}

	return results
}

// profileCompleteness mirrors the onboarding checklist: eight profile
// fields plus the five Big Five traits.
func profileCompleteness(profile candidate.Profile, personality *candidate.PersonalityProfile) int {
	total := 13
	completed := 0

	for _, filled := range []bool{
		profile.FirstName != "",
		profile.LastName != "",
		profile.Location != "",
		profile.EducationLevel != "",
		profile.FieldOfStudy != "",
		profile.ExperienceLevel != "",
		profile.DesiredPosition != "",
		len(profile.Skills) > 0,
	} {
		if filled {
			completed++
		}
	}

	if personality != nil {
		for _, trait := range []int{
			personality.Openness,
			personality.Conscientiousness,
			personality.Extraversion,
			personality.Agreeableness,
			personality.Neuroticism,
		} {
			if trait > 0 {
				completed++
			}
		}
	}

	return int(float64(completed)/float64(total)*100 + 0.5)
}
