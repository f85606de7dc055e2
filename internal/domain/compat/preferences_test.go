package compat

import (
	"testing"

	"match-ton-alternance/internal/domain/candidate"
	"match-ton-alternance/internal/domain/job"
)

func TestPreferencesScore_FullMatch(t *testing.T) {
	p := candidate.Profile{
		AcceptedContracts:    []string{"Alternance"},
		PreferredSectors:     []string{"informatique"},
		SalaryExpectationMin: 1200,
	}
	j := job.Posting{
		ContractType: "alternance",
		Sector:       "Informatique / Numérique",
		SalaryMin:    1300,
	}
	// contract 40 + sector 40 + salary 20.
	if got := preferencesScore(p, j); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestPreferencesScore_SalaryIsNeutralWhenUndisclosed(t *testing.T) {
	p := candidate.Profile{AcceptedContracts: []string{"cdi"}}
	j := job.Posting{ContractType: "alternance"}
	if got := preferencesScore(p, j); got != 20 {
		t.Fatalf("expected neutral salary credit only, got %d", got)
	}
}

func TestPreferencesScore_SectorSubstring(t *testing.T) {
	p := candidate.Profile{PreferredSectors: []string{"data"}}
	j := job.Posting{Sector: "Data & IA"}
	// sector 40 + salary 20.
	if got := preferencesScore(p, j); got != 60 {
		t.Fatalf("expected 60, got %d", got)
	}
}

func TestPreferencesScore_EmptyContractNeverMatches(t *testing.T) {
	p := candidate.Profile{AcceptedContracts: []string{""}}
	j := job.Posting{}
	if got := preferencesScore(p, j); got != 20 {
		t.Fatalf("empty contract strings must not count, got %d", got)
	}
}
