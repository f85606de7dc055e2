package dto

import (
	"match-ton-alternance/internal/domain/compat"

	"github.com/google/uuid"
)

type DetailedScoresResponse struct {
	Skills      int `json:"skills"`
	Personality int `json:"personality"`
	Location    int `json:"location"`
	Experience  int `json:"experience"`
	Education   int `json:"education"`
	Preferences int `json:"preferences"`
}

type CompatibilityResponse struct {
	JobID           uuid.UUID              `json:"job_id"`
	Score           int                    `json:"compatibility_score"`
	Level           string                 `json:"compatibility_level"`
	DetailedScores  DetailedScoresResponse `json:"detailed_scores"`
	MatchReasons    []string               `json:"match_reasons"`
	Recommendations []string               `json:"recommendations"`
}

func NewDetailedScoresResponse(b compat.Breakdown) DetailedScoresResponse {
	return DetailedScoresResponse{
		Skills:      b.Skills,
		Personality: b.Personality,
		Location:    b.Location,
		Experience:  b.Experience,
		Education:   b.Education,
		Preferences: b.Preferences,
	}
}

func NewCompatibilityResponse(jobID uuid.UUID, res compat.Result) CompatibilityResponse {
	return CompatibilityResponse{
		JobID:           jobID,
		Score:           res.TotalScore,
		Level:           res.Level,
		DetailedScores:  NewDetailedScoresResponse(res.Scores),
		MatchReasons:    res.Reasons,
		Recommendations: res.Recommendations,
	}
}
