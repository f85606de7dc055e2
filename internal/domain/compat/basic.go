package compat

import (
	"strings"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/job"

	"github.com/google/uuid"
)

// BasicScorer is the degraded scoring mode: a flat heuristic over position
// title, location, raw skill intersection and experience level. It exists
// for deployments without the personality questionnaire, chosen explicitly
// at wiring time, never probed for at call time.
type BasicScorer struct{}

func NewBasicScorer() *BasicScorer {
	return &BasicScorer{}
}

func (s *BasicScorer) Score(profile candidate.Profile, _ *candidate.PersonalityProfile, posting job.Posting) (Result, error) {
	if profile.UserID == uuid.Nil || posting.ID == uuid.Nil {
		return Result{}, ErrInvalidInput
	}

	score := 0

	title := strings.ToLower(posting.Title)
	desired := strings.ToLower(strings.TrimSpace(profile.DesiredPosition))
	if desired != "" && strings.Contains(title, desired) {
		score += 30
	}

	jobLoc := strings.ToLower(posting.Location)
	candLoc := strings.ToLower(strings.TrimSpace(profile.Location))
	if candLoc != "" && strings.Contains(jobLoc, candLoc) {
		score += 20
	}

	jobSkills := make(map[string]struct{}, len(posting.RequiredSkills))
	for _, sk := range posting.RequiredSkills {
		jobSkills[strings.ToLower(strings.TrimSpace(sk))] = struct{}{}
	}
	common := 0
	for _, sk := range profile.Skills {
		if _, ok := jobSkills[strings.ToLower(strings.TrimSpace(sk))]; ok {
			common++
		}
	}
	if common*10 > 30 {
		score += 30
	} else {
		score += common * 10
	}

	if profile.ExperienceYears >= posting.ExperienceRequiredYears {
		score += 20
	}

	score = clampScore(score)

	return Result{
		TotalScore: score,
		Level:      CompatibilityLevel(score),
		Reasons:    []string{"Correspondance basique avec votre profil"},
	}, nil
}
