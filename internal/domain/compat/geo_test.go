package compat

import "testing"

func TestLocationScore_RemotePreferenceWins(t *testing.T) {
	got := locationScore([]string{"télétravail"}, "Quimper", true)
	if got != 100 {
		t.Fatalf("expected 100 for remote fit, got %d", got)
	}
}

func TestLocationScore_RemoteJobWithoutPreferenceFallsThrough(t *testing.T) {
	got := locationScore([]string{"paris"}, "Paris", true)
	if got != 90 {
		t.Fatalf("expected substring tier 90, got %d", got)
	}
}

func TestLocationScore_SubstringEitherDirection(t *testing.T) {
	if got := locationScore([]string{"paris"}, "Paris 11e", false); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
	if got := locationScore([]string{"lyon 3e"}, "Lyon", false); got != 90 {
		t.Fatalf("expected 90, got %d", got)
	}
}

func TestLocationScore_SameRegionByDepartment(t *testing.T) {
	// "ile-de-france" and "paris" are distinct strings resolving into the
	// same region entry.
	got := locationScore([]string{"ile-de-france"}, "Paris La Défense", false)
	if got != 70 {
		t.Fatalf("expected region tier 70, got %d", got)
	}
}

func TestLocationScore_DefaultFloor(t *testing.T) {
	got := locationScore([]string{"lille"}, "Marseille", false)
	if got != 30 {
		t.Fatalf("expected default 30, got %d", got)
	}
}

func TestLocationScore_EmptyInputs(t *testing.T) {
	if got := locationScore(nil, "", false); got != 30 {
		t.Fatalf("expected default 30 on empty input, got %d", got)
	}
}
