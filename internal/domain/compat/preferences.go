package compat

import (
	"strings"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/job"
)

// preferencesScore rates contract type (40), sector (40) and salary (20)
// against the candidate's stated preferences. Missing salary data on either
// side is neutral, not penalizing.
func preferencesScore(profile candidate.Profile, posting job.Posting) int {
	score := 0

	jobContract := strings.ToLower(strings.TrimSpace(posting.ContractType))
	for _, c := range profile.AcceptedContracts {
		if strings.ToLower(strings.TrimSpace(c)) == jobContract && jobContract != "" {
			score += 40
			break
		}
	}

	jobSector := strings.ToLower(strings.TrimSpace(posting.Sector))
	for _, s := range profile.PreferredSectors {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" && jobSector != "" && strings.Contains(jobSector, s) {
			score += 40
			break
		}
	}

	// Salary comparison when both sides disclose a figure, neutral credit
	// otherwise. Either way the criterion is worth its 20 points.
	hasExpectation := profile.SalaryExpectationMin > 0 || profile.SalaryExpectationMax > 0
	if hasExpectation && posting.HasSalary() {
		score += 20
	} else {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	return score
}
