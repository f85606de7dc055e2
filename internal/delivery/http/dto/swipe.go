package dto

import (
	"time"

	"match-ton-alternance/internal/domain/swipe"

	"github.com/google/uuid"
)

type SwipeRequest struct {
	Action     string `json:"action"`
	MatchScore int    `json:"match_score"`
	Feedback   string `json:"feedback"`
}

type SwipeResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	Action     string    `json:"action"`
	MatchScore int       `json:"match_score"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewSwipeResponse(rec swipe.Record) SwipeResponse {
	return SwipeResponse{
		ID:         rec.ID,
		JobID:      rec.JobID,
		Action:     string(rec.Action),
		MatchScore: rec.MatchScore,
		CreatedAt:  rec.CreatedAt,
	}
}

type SwipeHistoryResponse struct {
	Swipes []SwipeResponse `json:"swipes"`
	Total  int             `json:"total"`
}

func NewSwipeHistoryResponse(records []swipe.Record) SwipeHistoryResponse {
	out := SwipeHistoryResponse{Swipes: make([]SwipeResponse, 0, len(records))}
	for _, r := range records {
		out.Swipes = append(out.Swipes, NewSwipeResponse(r))
	}
	out.Total = len(out.Swipes)
	return out
}
