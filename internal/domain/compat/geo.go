package compat

import "strings"

// regionAreas maps each major metro region to the city name and the
// administrative department codes that resolve into it. The set is closed;
// extending coverage is a data change.
var regionAreas = map[string][]string{
	"paris":     {"paris", "ile-de-france", "75", "77", "78", "91", "92", "93", "94", "95"},
	"lyon":      {"lyon", "rhône", "69"},
	"marseille": {"marseille", "bouches-du-rhône", "13"},
	"toulouse":  {"toulouse", "haute-garonne", "31"},
	"lille":     {"lille", "nord", "59"},
	"bordeaux":  {"bordeaux", "gironde", "33"},
}

// locationScore resolves the candidate's preferred locations against the
// posting location. Tiers, first match wins: full remote fit 100, direct
// city overlap 90, same region 70. The floor is 30, not 0: an unmatched
// location is a penalty, never a disqualifier.
func locationScore(preferredLocations []string, jobLocation string, remoteWork bool) int {
	prefs := make([]string, 0, len(preferredLocations))
	for _, l := range preferredLocations {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			prefs = append(prefs, l)
		}
	}
	jobLoc := strings.ToLower(strings.TrimSpace(jobLocation))

	if remoteWork {
		for _, p := range prefs {
			if p == "télétravail" || p == "remote" {
				return 100
			}
		}
	}

	for _, p := range prefs {
		if jobLoc != "" && (strings.Contains(jobLoc, p) || strings.Contains(p, jobLoc)) {
			return 90
		}
	}

	for _, areas := range regionAreas {
		candidateIn := false
		jobIn := false
		for _, area := range areas {
			if !candidateIn {
				for _, p := range prefs {
					if p == area {
						candidateIn = true
						break
					}
				}
			}
			if !jobIn && jobLoc != "" && strings.Contains(jobLoc, area) {
				jobIn = true
			}
		}
		if candidateIn && jobIn {
			return 70
		}
	}

	return 30
}
