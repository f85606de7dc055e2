package dto

import (
	"time"

	"match-ton-alternance/internal/usecase"

	"github.com/google/uuid"
)

type RecommendedJobResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	ContractType string    `json:"contract_type"`
	RemoteWork   bool      `json:"remote_work"`
	PostedAt     time.Time `json:"posted_at"`

	Score           int                    `json:"compatibility_score"`
	Level           string                 `json:"compatibility_level"`
	DetailedScores  DetailedScoresResponse `json:"detailed_scores"`
	MatchReasons    []string               `json:"match_reasons"`
	Recommendations []string               `json:"recommendations"`
}

type RecommendationListResponse struct {
	Matches             []RecommendedJobResponse `json:"matches"`
	TotalMatches        int                      `json:"total_matches"`
	ProfileCompleteness int                      `json:"profile_completeness"`
}

func NewRecommendationListResponse(list usecase.RecommendationList) RecommendationListResponse {
	out := RecommendationListResponse{
		Matches:             make([]RecommendedJobResponse, 0, len(list.Items)),
		TotalMatches:        list.TotalMatches,
		ProfileCompleteness: list.ProfileCompleteness,
	}
	for _, it := range list.Items {
		out.Matches = append(out.Matches, RecommendedJobResponse{
			JobID:           it.JobID,
			Title:           it.Title,
			Company:         it.Company,
			Location:        it.Location,
			ContractType:    it.ContractType,
			RemoteWork:      it.RemoteWork,
			PostedAt:        it.PostedAt,
			Score:           it.Score,
			Level:           it.Level,
			DetailedScores:  NewDetailedScoresResponse(it.Scores),
			MatchReasons:    it.Reasons,
			Recommendations: it.Recommendations,
		})
	}
	return out
}
