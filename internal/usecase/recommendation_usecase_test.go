package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/domain/job"
	"match-ton-alternance/internal/repository"

	"github.com/google/uuid"
)

func newTestRecommendation(profiles *mockProfileRepo, jobs *mockJobRepo) *Recommendation {
	return NewRecommendationUsecase(
		profiles,
		jobs,
		compat.NewEngine(compat.DefaultWeights()),
		nil,
		nil,
		60, 20, 4,
	)
}

func TestGetPersonalizedMatches_NilUser(t *testing.T) {
	uc := newTestRecommendation(&mockProfileRepo{}, &mockJobRepo{})
	_, err := uc.GetPersonalizedMatches(context.Background(), uuid.Nil, RecommendationParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestGetPersonalizedMatches_ProfileMissing(t *testing.T) {
	uc := newTestRecommendation(&mockProfileRepo{profileErr: repository.ErrProfileNotFound}, &mockJobRepo{})
	_, err := uc.GetPersonalizedMatches(context.Background(), uuid.New(), RecommendationParams{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetPersonalizedMatches_FiltersAndRanks(t *testing.T) {
	userID := uuid.New()

	strong := fixturePosting(uuid.New())
	strong.PostedAt = time.Now().UTC().Add(-48 * time.Hour)

	strongRecent := fixturePosting(uuid.New())
	strongRecent.PostedAt = time.Now().UTC()

	weak := job.Posting{
		ID:             uuid.New(),
		Title:          "Chaudronnier soudeur",
		Description:    "Atelier de production.",
		Location:       "Marseille",
		ContractType:   "cdi",
		RequiredSkills: []string{"soudure", "tig", "mig"},
		PostedAt:       time.Now().UTC(),
	}

	uc := newTestRecommendation(
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{active: []job.Posting{weak, strong, strongRecent}},
	)

	list, err := uc.GetPersonalizedMatches(context.Background(), userID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(list.Items) != 2 {
		t.Fatalf("expected the weak posting filtered out, got %d items", len(list.Items))
	}
	if list.TotalMatches != 2 {
		t.Fatalf("total_matches = %d, want 2", list.TotalMatches)
	}

	// Equal scores: recency breaks the tie, most recent first.
	if list.Items[0].JobID != strongRecent.ID {
		t.Fatalf("expected most recent posting first")
	}
	for _, it := range list.Items {
		if it.Score < 60 {
			t.Fatalf("item below threshold leaked through: %d", it.Score)
		}
		if it.Level == "" {
			t.Fatalf("missing compatibility level")
		}
	}
}

func TestGetPersonalizedMatches_LimitApplies(t *testing.T) {
	userID := uuid.New()

	postings := make([]job.Posting, 0, 30)
	for i := 0; i < 30; i++ {
		p := fixturePosting(uuid.New())
		p.PostedAt = time.Now().UTC().Add(-time.Duration(i) * time.Hour)
		postings = append(postings, p)
	}

	uc := newTestRecommendation(
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{active: postings},
	)

	list, err := uc.GetPersonalizedMatches(context.Background(), userID, RecommendationParams{Limit: 5})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(list.Items))
	}
}

func TestGetPersonalizedMatches_NoActiveJobs(t *testing.T) {
	userID := uuid.New()
	uc := newTestRecommendation(
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{},
	)

	list, err := uc.GetPersonalizedMatches(context.Background(), userID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list.Items) != 0 {
		t.Fatalf("expected empty list, got %d", len(list.Items))
	}
	if list.ProfileCompleteness <= 0 {
		t.Fatalf("expected completeness computed from the profile")
	}
}

func TestProfileCompleteness(t *testing.T) {
	userID := uuid.New()

	// 4 of 8 profile fields, no personality: round(4/13*100) = 31.
	p := fixtureProfile(userID)
	if got := profileCompleteness(p, nil); got != 31 {
		t.Fatalf("completeness = %d, want 31", got)
	}

	full := p
	full.FirstName = "Camille"
	full.LastName = "Robert"
	full.FieldOfStudy = "informatique"
	full.ExperienceLevel = "junior"
	traits := &candidate.PersonalityProfile{
		Openness: 70, Conscientiousness: 60, Extraversion: 55,
		Agreeableness: 65, Neuroticism: 40,
	}
	if got := profileCompleteness(full, traits); got != 100 {
		t.Fatalf("completeness = %d, want 100", got)
	}
}
