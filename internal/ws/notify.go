package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type MatchCreatedEvent struct {
	Type       string `json:"type"`
	JobID      string `json:"job_id"`
	MatchScore int    `json:"match_score"`
	Level      string `json:"level"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyMatchCreated pushes a match_created event to the candidate's
// connected clients. A nil default hub makes this a no-op, so callers never
// need to guard it.
func NotifyMatchCreated(userID, jobID uuid.UUID, score int, level string) {
	h := defaultHub.Load()
	if h == nil || userID == uuid.Nil {
		return
	}

	evt := MatchCreatedEvent{
		Type:       "match_created",
		JobID:      jobID.String(),
		MatchScore: score,
		Level:      level,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Send(userID, b)
}
