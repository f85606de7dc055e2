package compat

import "strings"

// educationLevels orders the French diploma ladder. Unknown labels resolve
// to 0, which reads as "no requirement" on the posting side.
var educationLevels = map[string]int{
	"bac":   1,
	"bac+1": 2,
	"bac+2": 3,
	"bac+3": 4,
	"bac+4": 5,
	"bac+5": 6,
	"bac+8": 7,
}

// experienceScore bands the candidate years against the requirement.
// No requirement means full marks; partial coverage degrades in steps
// rather than linearly so near-misses stay attractive.
func experienceScore(candidateYears, requiredYears int) int {
	if requiredYears <= 0 {
		return 100
	}
	switch {
	case candidateYears >= requiredYears:
		return 100
	case float64(candidateYears) >= float64(requiredYears)*0.7:
		return 80
	case float64(candidateYears) >= float64(requiredYears)*0.5:
		return 60
	default:
		return 30
	}
}

// educationScore compares ordinal diploma levels. One level short keeps 80
// points; further short drops to 50, never lower.
func educationScore(candidateLevel, requiredLevel string) int {
	required := educationLevels[normalizeLevel(requiredLevel)]
	if required == 0 {
		return 100
	}
	candidateNum := educationLevels[normalizeLevel(candidateLevel)]
	switch {
	case candidateNum >= required:
		return 100
	case candidateNum >= required-1:
		return 80
	default:
		return 50
	}
}

func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}
