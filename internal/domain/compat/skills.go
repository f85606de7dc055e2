package compat

import (
	"math"
	"strings"
)

// skillSynonyms groups alternate spellings and common ecosystem shorthands
// under one canonical skill. Adding a synonym class is a data change only.
var skillSynonyms = map[string][]string{
	"javascript": {"js", "node", "nodejs"},
	"python":     {"py", "django", "flask"},
	"java":       {"spring", "hibernate"},
	"php":        {"laravel", "symfony"},
	"react":      {"reactjs", "react.js"},
	"angular":    {"angularjs"},
	"vue":        {"vuejs", "vue.js"},
}

var canonicalSkill map[string]string

func init() {
	canonicalSkill = make(map[string]string, len(skillSynonyms)*4)
	for main, variants := range skillSynonyms {
		canonicalSkill[main] = main
		for _, v := range variants {
			canonicalSkill[v] = main
		}
	}
}

// SkillSimilarity compares two skill tokens and returns a similarity in
// [0,1]. No stemming and no edit distance: the tiers are deliberately
// coarse so every match stays explainable.
func SkillSimilarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}
	ca, okA := canonicalSkill[a]
	cb, okB := canonicalSkill[b]
	if okA && okB && ca == cb {
		return 0.85
	}
	return 0.0
}

const skillMatchThreshold = 0.8

// skillsScore rates the candidate skill set against a posting's required and
// preferred skills. Required skills carry 70 of the 100 points, preferred
// skills the remaining 30; a posting without preferred skills grants the 30
// in full, a posting without required skills scores a neutral 50.
func skillsScore(candidateSkills, requiredSkills, preferredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 50
	}

	matchesAny := func(required string) bool {
		for _, s := range candidateSkills {
			if SkillSimilarity(s, required) > skillMatchThreshold {
				return true
			}
		}
		return false
	}

	matchedRequired := 0
	for _, r := range requiredSkills {
		if matchesAny(r) {
			matchedRequired++
		}
	}

	requiredPart := float64(matchedRequired) / float64(len(requiredSkills)) * 70

	preferredPart := 30.0
	if len(preferredSkills) > 0 {
		matchedPreferred := 0
		for _, p := range preferredSkills {
			if matchesAny(p) {
				matchedPreferred++
			}
		}
		preferredPart = float64(matchedPreferred) / float64(len(preferredSkills)) * 30
	}

	return clampScore(int(math.Round(requiredPart + preferredPart)))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
