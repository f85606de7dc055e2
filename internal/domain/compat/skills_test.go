package compat

import "testing"

func TestSkillSimilarity_Tiers(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"php", "php", 1.0},
		{"PHP", "php", 1.0},
		{"react", "reactjs", 0.85},
		{"reactjs", "react.js", 0.85},
		{"js", "node", 0.85},
		{"javascript", "java", 0.9},
		{"python", "marketing", 0.0},
		{"", "php", 0.0},
	}
	for _, c := range cases {
		if got := SkillSimilarity(c.a, c.b); got != c.want {
			t.Fatalf("SkillSimilarity(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSkillSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"react", "reactjs"},
		{"javascript", "script"},
		{"python", "go"},
	}
	for _, p := range pairs {
		if SkillSimilarity(p[0], p[1]) != SkillSimilarity(p[1], p[0]) {
			t.Fatalf("similarity not symmetric for %q / %q", p[0], p[1])
		}
	}
}

func TestSkillsScore_NoRequiredSkillsIsNeutral(t *testing.T) {
	if got := skillsScore([]string{"go"}, nil, nil); got != 50 {
		t.Fatalf("expected neutral 50, got %d", got)
	}
}

func TestSkillsScore_FullMatchWithoutPreferred(t *testing.T) {
	got := skillsScore([]string{"react", "php"}, []string{"react", "php"}, nil)
	if got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestSkillsScore_HalfRequiredMatched(t *testing.T) {
	// 1/2 required (35) + full preferred credit (30).
	got := skillsScore([]string{"react", "javascript"}, []string{"react", "php"}, nil)
	if got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}
}

func TestSkillsScore_PreferredFraction(t *testing.T) {
	// 1/1 required (70) + 1/2 preferred (15).
	got := skillsScore([]string{"go", "docker"}, []string{"go"}, []string{"docker", "kubernetes"})
	if got != 85 {
		t.Fatalf("expected 85, got %d", got)
	}
}

func TestSkillsScore_SynonymCountsAsMatch(t *testing.T) {
	got := skillsScore([]string{"nodejs"}, []string{"javascript"}, nil)
	if got != 100 {
		t.Fatalf("expected synonym to satisfy requirement, got %d", got)
	}
}

func TestSkillsScore_Bounds(t *testing.T) {
	got := skillsScore(nil, []string{"go", "rust", "zig"}, []string{"ada"})
	if got < 0 || got > 100 {
		t.Fatalf("score out of range: %d", got)
	}
	if got != 0 {
		t.Fatalf("expected 0 for disjoint sets, got %d", got)
	}
}
