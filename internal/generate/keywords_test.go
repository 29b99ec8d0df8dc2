package generate

import (
	"reflect"
	"testing"
)

// TestExtractKeywords tests tokenization, filtering, and prioritization
func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		mustHave    []string
		mustNotHave []string
		description string
	}{
		{
			name:        "typical product description",
			input:       "AI-powered task manager for teams",
			mustHave:    []string{"powered", "task", "manager", "teams"},
			mustNotHave: []string{"ai", "for"},
			description: "short tokens and stop words are dropped, content words kept",
		},
		{
			name:        "punctuation stripped",
			input:       "realtime analytics, dashboards & alerts!",
			mustHave:    []string{"realtime", "analytics", "dashboards", "alerts"},
			mustNotHave: []string{"&"},
			description: "punctuation never survives into keywords",
		},
		{
			name:        "hyphens split words",
			input:       "cloud-native event-driven platform",
			mustHave:    []string{"cloud", "native", "event", "driven", "platform"},
			mustNotHave: []string{"cloud-native"},
			description: "hyphenated compounds split into their parts",
		},
		{
			name:        "duplicates removed",
			input:       "task task task tracker",
			mustHave:    []string{"task", "tracker"},
			mustNotHave: []string{},
			description: "repeated tokens appear once",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.input)
			set := make(map[string]bool, len(got))
			for _, kw := range got {
				set[kw] = true
			}
			for _, want := range tt.mustHave {
				if !set[want] {
					t.Errorf("ExtractKeywords(%q) missing %q: %s (got %v)",
						tt.input, want, tt.description, got)
				}
			}
			for _, forbidden := range tt.mustNotHave {
				if set[forbidden] {
					t.Errorf("ExtractKeywords(%q) contains %q: %s",
						tt.input, forbidden, tt.description)
				}
			}
		})
	}
}

// TestExtractKeywordsEmpty tests descriptions with nothing usable
func TestExtractKeywordsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only stop words", "the for and with"},
		{"only short tokens", "a of to is"},
		{"only punctuation", "!!! ... ???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractKeywords(tt.input); len(got) != 0 {
				t.Errorf("ExtractKeywords(%q) = %v, want empty", tt.input, got)
			}
		})
	}
}

// TestExtractKeywordsDedupe verifies first occurrence wins on duplicates
func TestExtractKeywordsDedupe(t *testing.T) {
	got := ExtractKeywords("tracker widget tracker")
	want := []string{"tracker", "widget"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

// TestPrioritizeKeywords verifies tech and action terms lead the order
func TestPrioritizeKeywords(t *testing.T) {
	got := ExtractKeywords("monthly budget sync data reports")

	// "sync" and "data" are recognized tech terms and must come first,
	// preserving their relative order; generic words follow in theirs
	want := []string{"sync", "data", "monthly", "budget", "reports"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

// TestExtractKeywordsLowercases verifies case normalization
func TestExtractKeywordsLowercases(t *testing.T) {
	got := ExtractKeywords("Task Manager")
	want := []string{"task", "manager"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}
