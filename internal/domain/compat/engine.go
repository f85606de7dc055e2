package compat

import (
	"errors"
	"math"
	"strings"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/job"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// Weights distributes the 100 points of the total score across the six
// criteria. The values are injected at construction so policy changes never
// require touching the engine.
type Weights struct {
	Skills      float64
	Personality float64
	Location    float64
	Experience  float64
	Education   float64
	Preferences float64
}

func DefaultWeights() Weights {
	return Weights{
		Skills:      0.35,
		Personality: 0.25,
		Location:    0.15,
		Experience:  0.10,
		Education:   0.08,
		Preferences: 0.07,
	}
}

// Breakdown carries the per-criterion sub-scores, each in [0,100].
type Breakdown struct {
	Skills      int
	Personality int
	Location    int
	Experience  int
	Education   int
	Preferences int
}

// Result is the full compatibility verdict for one candidate/posting pair.
// It is ephemeral: persistence only happens when a swipe promotes it into a
// Match.
type Result struct {
	TotalScore      int
	Scores          Breakdown
	Level           string
	Reasons         []string
	Recommendations []string
}

// Compatibility tier labels, derived from the total score.
const (
	LevelExcellent = "Excellent"
	LevelVeryGood  = "Très bon"
	LevelGood      = "Bon"
	LevelAverage   = "Moyen"
	LevelWeak      = "Faible"
)

// Scorer is the single capability the service layer depends on. Engine is
// the full implementation; BasicScorer is the explicit degraded mode,
// selected at construction time.
type Scorer interface {
	Score(profile candidate.Profile, personality *candidate.PersonalityProfile, posting job.Posting) (Result, error)
}

type Engine struct {
	weights Weights
}

func NewEngine(w Weights) *Engine {
	if w == (Weights{}) {
		w = DefaultWeights()
	}
	return &Engine{weights: w}
}

// Score computes the weighted compatibility between a candidate and a
// posting. It is pure: no I/O, no mutation of its inputs. Missing optional
// data degrades the relevant sub-score to its neutral default; only an
// absent identity is an error.
func (e *Engine) Score(profile candidate.Profile, personality *candidate.PersonalityProfile, posting job.Posting) (Result, error) {
	if profile.UserID == uuid.Nil || posting.ID == uuid.Nil {
		return Result{}, ErrInvalidInput
	}

	jobText := strings.ToLower(posting.Title + " " + posting.Description)

	scores := Breakdown{
		Skills:      skillsScore(profile.Skills, posting.RequiredSkills, posting.PreferredSkills),
		Personality: personalityScore(personality, jobText),
		Location:    locationScore(profile.PreferredLocations, posting.Location, posting.RemoteWork),
		Experience:  experienceScore(profile.ExperienceYears, posting.ExperienceRequiredYears),
		Education:   educationScore(profile.EducationLevel, posting.EducationRequired),
		Preferences: preferencesScore(profile, posting),
	}

	total := float64(scores.Skills)*e.weights.Skills +
		float64(scores.Personality)*e.weights.Personality +
		float64(scores.Location)*e.weights.Location +
		float64(scores.Experience)*e.weights.Experience +
		float64(scores.Education)*e.weights.Education +
		float64(scores.Preferences)*e.weights.Preferences

	totalScore := clampScore(int(math.Round(total)))

	return Result{
		TotalScore:      totalScore,
		Scores:          scores,
		Level:           CompatibilityLevel(totalScore),
		Reasons:         matchReasons(scores),
		Recommendations: recommendations(scores),
	}, nil
}

func CompatibilityLevel(score int) string {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelVeryGood
	case score >= 55:
		return LevelGood
	case score >= 40:
		return LevelAverage
	default:
		return LevelWeak
	}
}

func matchReasons(s Breakdown) []string {
	reasons := make([]string, 0, 3)
	if s.Skills > 70 {
		reasons = append(reasons, "Excellente correspondance de compétences techniques")
	}
	if s.Personality > 75 {
		reasons = append(reasons, "Profil comportemental très compatible")
	}
	if s.Location > 80 {
		reasons = append(reasons, "Localisation idéale")
	}
	return reasons
}

func recommendations(s Breakdown) []string {
	recs := make([]string, 0, 4)
	if s.Skills < 60 {
		recs = append(recs, "Développez vos compétences techniques pour mieux correspondre aux exigences")
	}
	if s.Personality < 50 {
		recs = append(recs, "Mettez en avant les aspects de votre personnalité qui correspondent au poste")
	}
	if s.Location < 40 {
		recs = append(recs, "Considérez élargir votre zone de recherche géographique")
	}
	if s.Experience < 50 {
		recs = append(recs, "Valorisez vos expériences pertinentes, même non professionnelles")
	}
	return recs
}
