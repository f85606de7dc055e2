package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/compat"
	"match-ton-alternance/internal/domain/job"
	"match-ton-alternance/internal/domain/swipe"
	"match-ton-alternance/internal/repository"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	profile        candidate.Profile
	profileErr     error
	personality    *candidate.PersonalityProfile
	personalityErr error
}

func (m *mockProfileRepo) FindByUserID(context.Context, uuid.UUID) (candidate.Profile, error) {
	return m.profile, m.profileErr
}

func (m *mockProfileRepo) FindPersonalityByUserID(context.Context, uuid.UUID) (*candidate.PersonalityProfile, error) {
	return m.personality, m.personalityErr
}

type mockJobRepo struct {
	byID    map[uuid.UUID]job.Posting
	active  []job.Posting
	findErr error
	listErr error
}

func (m *mockJobRepo) FindByID(_ context.Context, jobID uuid.UUID) (job.Posting, error) {
	if m.findErr != nil {
		return job.Posting{}, m.findErr
	}
	p, ok := m.byID[jobID]
	if !ok {
		return job.Posting{}, repository.ErrJobNotFound
	}
	return p, nil
}

func (m *mockJobRepo) ListActive(context.Context, int, int) ([]job.Posting, error) {
	return m.active, m.listErr
}

type mockSwipeRepo struct {
	inserted  []repository.SwipeInsert
	insertErr error
	history   []swipe.Record
}

func (m *mockSwipeRepo) Insert(_ context.Context, in repository.SwipeInsert) (swipe.Record, error) {
	if m.insertErr != nil {
		return swipe.Record{}, m.insertErr
	}
	m.inserted = append(m.inserted, in)
	return swipe.Record{
		ID:         uuid.New(),
		UserID:     in.UserID,
		JobID:      in.JobID,
		Action:     in.Action,
		MatchScore: in.MatchScore,
		Feedback:   in.Feedback,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (m *mockSwipeRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]swipe.Record, error) {
	return m.history, nil
}

type mockMatchRepo struct {
	upserts   []repository.MatchUpsert
	upsertErr error
	toggled   swipe.Match
	toggleErr error
	list      []swipe.Match
	listErr   error
}

func (m *mockMatchRepo) Upsert(_ context.Context, in repository.MatchUpsert) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, in)
	return nil
}

func (m *mockMatchRepo) ToggleFavorite(context.Context, uuid.UUID, uuid.UUID) (swipe.Match, error) {
	if m.toggleErr != nil {
		return swipe.Match{}, m.toggleErr
	}
	return m.toggled, nil
}

func (m *mockMatchRepo) ListByUser(context.Context, uuid.UUID, int, int) ([]swipe.Match, error) {
	return m.list, m.listErr
}

func fixtureProfile(userID uuid.UUID) candidate.Profile {
	return candidate.Profile{
		UserID:             userID,
		DesiredPosition:    "développeur",
		Location:           "Paris",
		EducationLevel:     "bac+2",
		Skills:             []string{"react", "javascript"},
		PreferredLocations: []string{"paris"},
		AcceptedContracts:  []string{"alternance"},
	}
}

func fixturePosting(jobID uuid.UUID) job.Posting {
	return job.Posting{
		ID:             jobID,
		Title:          "Développeur web en alternance",
		Description:    "Projets React en équipe.",
		Location:       "Paris",
		ContractType:   "alternance",
		RequiredSkills: []string{"react", "php"},
		IsActive:       true,
		PostedAt:       time.Now().UTC(),
	}
}

func newTestSwiper(jobID uuid.UUID, userID uuid.UUID, swipes *mockSwipeRepo, matches *mockMatchRepo) *Swiper {
	return NewSwipeUsecase(
		swipes,
		matches,
		&mockProfileRepo{profile: fixtureProfile(userID)},
		&mockJobRepo{byID: map[uuid.UUID]job.Posting{jobID: fixturePosting(jobID)}},
		compat.NewEngine(compat.DefaultWeights()),
		nil,
		nil,
		60,
	)
}

func TestSwipe_InvalidAction(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, &mockMatchRepo{})

	_, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: "maybe"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwipe_UnknownJob(t *testing.T) {
	userID := uuid.New()
	uc := newTestSwiper(uuid.New(), userID, &mockSwipeRepo{}, &mockMatchRepo{})

	_, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: uuid.New(), Action: swipe.ActionLike})
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSwipe_DuplicateDecisionIsRejected(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	swipes := &mockSwipeRepo{insertErr: repository.ErrDuplicateSwipe}
	matches := &mockMatchRepo{}
	uc := newTestSwiper(jobID, userID, swipes, matches)

	_, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: swipe.ActionLike, Score: 80})
	if !errors.Is(err, ErrDuplicateDecision) {
		t.Fatalf("expected ErrDuplicateDecision, got %v", err)
	}
	if len(matches.upserts) != 0 {
		t.Fatalf("duplicate swipe must not touch matches")
	}
}

func TestSwipe_QualifyingLikeCreatesMatchWithBreakdown(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	swipes := &mockSwipeRepo{}
	matches := &mockMatchRepo{}
	uc := newTestSwiper(jobID, userID, swipes, matches)

	rec, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: swipe.ActionLike, Score: 71})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Action != swipe.ActionLike || rec.MatchScore != 71 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if len(swipes.inserted) != 1 {
		t.Fatalf("expected 1 swipe inserted, got %d", len(swipes.inserted))
	}
	if len(matches.upserts) != 1 {
		t.Fatalf("expected 1 match upsert, got %d", len(matches.upserts))
	}

	up := matches.upserts[0]
	if up.MatchScore != 71 {
		t.Fatalf("match score = %d, want decision-time 71", up.MatchScore)
	}
	if up.SkillsScore != 65 || up.LocationScore != 90 {
		t.Fatalf("unexpected breakdown: %+v", up)
	}
}

func TestSwipe_SuperLikeQualifies(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	matches := &mockMatchRepo{}
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, matches)

	if _, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: swipe.ActionSuperLike, Score: 60}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches.upserts) != 1 {
		t.Fatalf("expected match upsert for super_like at threshold")
	}
}

func TestSwipe_DislikeNeverCreatesMatch(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	matches := &mockMatchRepo{}
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, matches)

	if _, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: swipe.ActionDislike, Score: 95}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches.upserts) != 0 {
		t.Fatalf("dislike must not create a match")
	}
}

func TestSwipe_LikeBelowThresholdDoesNotMatch(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	matches := &mockMatchRepo{}
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, matches)

	if _, err := uc.Swipe(context.Background(), userID, SwipeParams{JobID: jobID, Action: swipe.ActionLike, Score: 59}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(matches.upserts) != 0 {
		t.Fatalf("score below threshold must not create a match")
	}
}

func TestToggleFavorite_NotFound(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	matches := &mockMatchRepo{toggleErr: repository.ErrMatchNotFound}
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, matches)

	_, err := uc.ToggleFavorite(context.Background(), userID, jobID)
	if !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestToggleFavorite_ReturnsUpdatedMatch(t *testing.T) {
	userID, jobID := uuid.New(), uuid.New()
	matches := &mockMatchRepo{toggled: swipe.Match{UserID: userID, JobID: jobID, IsFavorite: true}}
	uc := newTestSwiper(jobID, userID, &mockSwipeRepo{}, matches)

	m, err := uc.ToggleFavorite(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !m.IsFavorite {
		t.Fatalf("expected favorite flag set")
	}
}
