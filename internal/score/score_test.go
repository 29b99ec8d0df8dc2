package score

import (
	"testing"
)

// TestScoreAnchors tests overall scores for anchor names whose quality is
// unambiguous: a clean brandable word must score well, keyboard mash must not
func TestScoreAnchors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		minOverall  int
		maxOverall  int
		description string
	}{
		{
			name:        "brandable word scores high",
			input:       "taskify",
			minOverall:  71,
			maxOverall:  100,
			description: "pronounceable brandable-suffix words should be clearly above 70",
		},
		{
			name:        "keyboard mash scores low",
			input:       "xyzqrt",
			minOverall:  0,
			maxOverall:  39,
			description: "unpronounceable strings must land below 40 despite ideal length",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.input)
			if result.Overall < tt.minOverall || result.Overall > tt.maxOverall {
				t.Errorf("Score(%q).Overall = %d, want in [%d,%d]: %s",
					tt.input, result.Overall, tt.minOverall, tt.maxOverall, tt.description)
			}
		})
	}
}

// TestScoreBreakdownRanges verifies every sub-score stays in [0,100]
func TestScoreBreakdownRanges(t *testing.T) {
	names := []string{
		"taskify", "xyzqrt", "a", "workhub", "my-name", "task42",
		"aaaaaa", "verylongcandidatename",
	}

	for _, name := range names {
		result := Score(name)
		checks := map[string]int{
			"overall":          result.Overall,
			"pronounceability": result.Breakdown.Pronounceability,
			"length":           result.Breakdown.Length,
			"brandability":     result.Breakdown.Brandability,
			"memorability":     result.Breakdown.Memorability,
			"typingEase":       result.Breakdown.TypingEase,
		}
		for dim, v := range checks {
			if v < 0 || v > 100 {
				t.Errorf("Score(%q) %s = %d, out of [0,100]", name, dim, v)
			}
		}
	}
}

// TestScoreDeterministic verifies scoring is a pure function
func TestScoreDeterministic(t *testing.T) {
	for _, name := range []string{"taskify", "xyzqrt", "workhub"} {
		first := Score(name)
		for i := 0; i < 5; i++ {
			if got := Score(name); got != first {
				t.Fatalf("Score(%q) not deterministic: %+v then %+v", name, first, got)
			}
		}
	}
}

// TestGrade tests the full grade boundary table
func TestGrade(t *testing.T) {
	tests := []struct {
		overall  int
		expected string
	}{
		{100, "A+"},
		{95, "A+"},
		{94, "A"},
		{90, "A"},
		{89, "A-"},
		{85, "A-"},
		{84, "B+"},
		{80, "B+"},
		{79, "B"},
		{75, "B"},
		{74, "B-"},
		{70, "B-"},
		{69, "C+"},
		{65, "C+"},
		{64, "C"},
		{60, "C"},
		{59, "C-"},
		{55, "C-"},
		{54, "D"},
		{50, "D"},
		{49, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := Grade(tt.overall); got != tt.expected {
			t.Errorf("Grade(%d) = %q, want %q", tt.overall, got, tt.expected)
		}
	}
}

// TestGradeExhaustive verifies every score in [0,100] maps to a grade and
// grades never improve as the score drops
func TestGradeExhaustive(t *testing.T) {
	order := map[string]int{
		"A+": 0, "A": 1, "A-": 2, "B+": 3, "B": 4, "B-": 5,
		"C+": 6, "C": 7, "C-": 8, "D": 9, "F": 10,
	}

	prev := "A+"
	for overall := 100; overall >= 0; overall-- {
		grade := Grade(overall)
		rank, ok := order[grade]
		if !ok {
			t.Fatalf("Grade(%d) = %q, not a known grade", overall, grade)
		}
		if rank < order[prev] {
			t.Errorf("Grade(%d) = %q improves on Grade(%d) = %q", overall, grade, overall+1, prev)
		}
		prev = grade
	}
}

// TestScoreLength tests the length step function
func TestScoreLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"three chars", "abc", 40},
		{"four chars", "abcd", 60},
		{"five chars", "abcde", 75},
		{"six chars ideal", "abcdef", 100},
		{"eight chars ideal", "abcdefgh", 100},
		{"nine chars", "abcdefghi", 90},
		{"eleven chars", "abcdefghijk", 75},
		{"twelve chars", "abcdefghijkl", 60},
		{"thirteen chars", "abcdefghijklm", 45},
		{"fourteen chars", "abcdefghijklmn", 30},
		{"fifteen chars", "abcdefghijklmno", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreLength(tt.input); got != tt.expected {
				t.Errorf("scoreLength(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

// TestScoreBrandability tests brand signal detection
func TestScoreBrandability(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int
		description string
	}{
		{
			name:        "brandable suffix with variety",
			input:       "taskify",
			expected:    95,
			description: "ify suffix (+20), lowercase (+10), varied chars (+15)",
		},
		{
			name:        "digit penalty",
			input:       "task42",
			expected:    55,
			description: "lowercase (+10) and variety (+15) minus digits (-20)",
		},
		{
			name:        "hyphen penalty",
			input:       "my-name",
			expected:    60,
			description: "lowercase (+10), variety (+15), hyphen (-15)",
		},
		{
			name:        "uppercase loses lowercase bonus",
			input:       "TaskIfy",
			expected:    85,
			description: "ify suffix (+20) and variety (+15) but no lowercase bonus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreBrandability(tt.input); got != tt.expected {
				t.Errorf("scoreBrandability(%q) = %d, want %d: %s",
					tt.input, got, tt.expected, tt.description)
			}
		})
	}
}

// TestScoreMemorability tests repetition handling
func TestScoreMemorability(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int
		description string
	}{
		{
			name:        "single repeated char",
			input:       "aaaa",
			expected:    0,
			description: "degenerate repetition is not a name",
		},
		{
			name:        "doubled letter bonus",
			input:       "troops",
			expected:    65,
			description: "double letters help recall",
		},
		{
			name:        "tripled letter penalty",
			input:       "freeex",
			expected:    25,
			description: "triples read as typos",
		},
		{
			name:        "memorable ending",
			input:       "hosting",
			expected:    60,
			description: "ing ending feels like a real word",
		},
		{
			name:        "plain word",
			input:       "forge",
			expected:    50,
			description: "no signals either way keeps the base score",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreMemorability(tt.input); got != tt.expected {
				t.Errorf("scoreMemorability(%q) = %d, want %d: %s",
					tt.input, got, tt.expected, tt.description)
			}
		})
	}
}

// TestScoreTypingEase tests awkward bigram and alternation handling
func TestScoreTypingEase(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		maxExpected int
		minExpected int
		description string
	}{
		{
			name:        "awkward bigram penalized",
			input:       "xzibit",
			minExpected: 0,
			maxExpected: 60,
			description: "xz forces uncomfortable finger travel",
		},
		{
			name:        "alternating hands rewarded",
			input:       "taskify",
			minExpected: 80,
			maxExpected: 100,
			description: "half the bigrams switch hands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreTypingEase(tt.input)
			if got < tt.minExpected || got > tt.maxExpected {
				t.Errorf("scoreTypingEase(%q) = %d, want in [%d,%d]: %s",
					tt.input, got, tt.minExpected, tt.maxExpected, tt.description)
			}
		})
	}
}

// TestRank tests filtering and ordering
func TestRank(t *testing.T) {
	names := []string{"xyzqrt", "taskify", "workhub"}

	ranked := Rank(names, 40)

	if len(ranked) != 2 {
		t.Fatalf("Rank() kept %d names, want 2 (xyzqrt under floor)", len(ranked))
	}
	for _, r := range ranked {
		if r.Name == "xyzqrt" {
			t.Errorf("Rank() kept %q despite minScore 40", r.Name)
		}
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Result.Overall < ranked[i].Result.Overall {
			t.Errorf("Rank() not sorted descending: %d before %d",
				ranked[i-1].Result.Overall, ranked[i].Result.Overall)
		}
	}
}

// TestRankEmpty tests that an empty input produces an empty ranking
func TestRankEmpty(t *testing.T) {
	if got := Rank(nil, 0); len(got) != 0 {
		t.Errorf("Rank(nil) = %d entries, want 0", len(got))
	}
}
