package compat

import (
	"testing"

	"match-ton-alternance/internal/domain/candidate"
)

func TestPersonalityScore_NilProfileIsNeutral(t *testing.T) {
	if got := personalityScore(nil, "travail en équipe"); got != 50 {
		t.Fatalf("expected neutral 50, got %d", got)
	}
}

func TestPersonalityScore_TeamWorkStyle(t *testing.T) {
	p := &candidate.PersonalityProfile{WorkStyle: "team"}
	if got := personalityScore(p, "rejoignez une équipe dynamique"); got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}
	if got := personalityScore(p, "poste en autonomie"); got != 50 {
		t.Fatalf("expected untriggered 50, got %d", got)
	}
}

func TestPersonalityScore_IndependentWorkStyle(t *testing.T) {
	p := &candidate.PersonalityProfile{WorkStyle: "independent"}
	if got := personalityScore(p, "vous serez autonome sur votre périmètre"); got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}
}

func TestPersonalityScore_RulesAreAdditive(t *testing.T) {
	p := &candidate.PersonalityProfile{
		WorkStyle:          "team",
		LearningStyle:      "practical",
		StressManagement:   "planning",
		CommunicationStyle: "analytical",
		Motivations:        []string{"learning", "impact", "growth"},
	}
	text := "équipe pratique organisation formation impact évolution analyse"
	// 50 + 15 + 10 + 10 + 5*3 + 10 = 110, capped at 100.
	if got := personalityScore(p, text); got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
}

func TestPersonalityScore_MotivationTags(t *testing.T) {
	p := &candidate.PersonalityProfile{Motivations: []string{"learning", "growth"}}
	if got := personalityScore(p, "formation continue et évolution de carrière"); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestPersonalityScore_DirectCommunication(t *testing.T) {
	p := &candidate.PersonalityProfile{CommunicationStyle: "direct"}
	if got := personalityScore(p, "poste commercial terrain"); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}
