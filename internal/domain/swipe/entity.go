package swipe

import (
	"time"

	"github.com/google/uuid"
)

type Action string

const (
	ActionLike      Action = "like"
	ActionDislike   Action = "dislike"
	ActionSuperLike Action = "super_like"
	ActionSkip      Action = "skip"
)

func (a Action) Valid() bool {
	switch a {
	case ActionLike, ActionDislike, ActionSuperLike, ActionSkip:
		return true
	}
	return false
}

// Qualifying reports whether the action can promote the decision into a
// persisted Match (score threshold permitting).
func (a Action) Qualifying() bool {
	return a == ActionLike || a == ActionSuperLike
}

// Record is one candidate decision on one posting. The (UserID, JobID) pair
// is unique; a decision is taken exactly once.
type Record struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	JobID      uuid.UUID
	Action     Action
	MatchScore int
	Feedback   string
	CreatedAt  time.Time
}

// Match is the persisted outcome of a qualifying swipe. Only IsFavorite is
// mutable after creation.
type Match struct {
	ID     uuid.UUID
	UserID uuid.UUID
	JobID  uuid.UUID

	MatchScore       int
	SkillsScore      int
	PersonalityScore int
	LocationScore    int
	ExperienceScore  int

	IsFavorite bool
	CreatedAt  time.Time
}
