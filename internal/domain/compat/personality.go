package compat

import (
	"strings"

	"match-ton-alternance/internal/domain/candidate"
)

// personalityScore infers role fit from the questionnaire answers and the
// posting free text (title + description, lowercased by the caller). All
// rules are additive over a neutral base of 50 and each one triggers
// independently. A candidate without a personality profile keeps the base.
func personalityScore(p *candidate.PersonalityProfile, jobText string) int {
	score := 50
	if p == nil {
		return score
	}

	containsAny := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(jobText, w) {
				return true
			}
		}
		return false
	}

	switch p.WorkStyle {
	case "team":
		if containsAny("équipe", "collabor") {
			score += 15
		}
	case "independent":
		if containsAny("autonome", "indépendant") {
			score += 15
		}
	}

	if p.LearningStyle == "practical" && containsAny("pratique") {
		score += 10
	}

	if p.StressManagement == "planning" && containsAny("organisation") {
		score += 10
	}

	for _, m := range p.Motivations {
		switch m {
		case "learning":
			if containsAny("formation", "apprentissage") {
				score += 5
			}
		case "impact":
			if containsAny("impact", "innovation") {
				score += 5
			}
		case "growth":
			if containsAny("évolution", "carrière") {
				score += 5
			}
		}
	}

	switch p.CommunicationStyle {
	case "direct":
		if containsAny("commercial") {
			score += 10
		}
	case "analytical":
		if containsAny("analyse") {
			score += 10
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}
