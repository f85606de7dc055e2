package dto

import (
	"time"

	"match-ton-alternance/internal/domain/swipe"

	"github.com/google/uuid"
)

type MatchResponse struct {
	ID    uuid.UUID `json:"id"`
	JobID uuid.UUID `json:"job_id"`

	MatchScore       int `json:"match_score"`
	SkillsScore      int `json:"skills_score"`
	PersonalityScore int `json:"personality_score"`
	LocationScore    int `json:"location_score"`
	ExperienceScore  int `json:"experience_score"`

	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
}

type MatchListResponse struct {
	Matches []MatchResponse `json:"matches"`
	Total   int             `json:"total"`
}

func NewMatchResponse(m swipe.Match) MatchResponse {
	return MatchResponse{
		ID:               m.ID,
		JobID:            m.JobID,
		MatchScore:       m.MatchScore,
		SkillsScore:      m.SkillsScore,
		PersonalityScore: m.PersonalityScore,
		LocationScore:    m.LocationScore,
		ExperienceScore:  m.ExperienceScore,
		IsFavorite:       m.IsFavorite,
		CreatedAt:        m.CreatedAt,
	}
}

func NewMatchListResponse(matches []swipe.Match) MatchListResponse {
	out := MatchListResponse{Matches: make([]MatchResponse, 0, len(matches))}
	for _, m := range matches {
		out.Matches = append(out.Matches, NewMatchResponse(m))
	}
	out.Total = len(out.Matches)
	return out
}
