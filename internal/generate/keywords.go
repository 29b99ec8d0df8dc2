// Keyword extraction: turning a free-text project description into the
// ordered, deduplicated token list the generation strategies consume.

package generate

import (
	"regexp"
	"strings"
)

var (
	// Everything outside word characters, whitespace, and hyphens is noise
	nonWordChars = regexp.MustCompile(`[^\w\s-]`)
	tokenSplit   = regexp.MustCompile(`[\s-]+`)
)

// ExtractKeywords normalizes a description into naming keywords: lowercase,
// punctuation stripped, split on whitespace and hyphen runs, with short
// tokens and stop words dropped. Duplicates are removed preserving first
// occurrence, then recognized tech and action terms are stable-partitioned
// ahead of generic words so the strongest naming material leads.
//
// No stemming is performed: "teams" stays plural. Returns an empty slice
// when the description contains nothing usable.
func ExtractKeywords(description string) []string {
	cleaned := nonWordChars.ReplaceAllString(strings.ToLower(description), "")

	seen := make(map[string]bool)
	var keywords []string
	for _, token := range tokenSplit.Split(cleaned, -1) {
		if len(token) <= 2 || stopWords[token] || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}

	return prioritizeKeywords(keywords)
}

// prioritizeKeywords stable-partitions recognized tech/action terms ahead of
// generic words, preserving relative order within each group.
func prioritizeKeywords(keywords []string) []string {
	if len(keywords) < 2 {
		return keywords
	}

	prioritized := make([]string, 0, len(keywords))
	var generic []string
	for _, kw := range keywords {
		if isTechTerm(kw) || isActionWord(kw) {
			prioritized = append(prioritized, kw)
		} else {
			generic = append(generic, kw)
		}
	}
	return append(prioritized, generic...)
}
