// Package generate synthesizes candidate domain names from a short natural
// language project description, producing scored, ranked suggestions ready
// for availability checking.
//
// GENERATION PIPELINE:
// A description flows through three stages:
//
//  1. Keyword extraction: normalize, tokenize, drop stop words, prioritize
//     recognized tech/action terms (keywords.go)
//  2. Candidate synthesis: six independent strategies union their output
//     into one deduplicated candidate set
//  3. Scoring and ranking: every candidate is rated by the score package,
//     filtered by the minimum score, and sorted best-first
//
// CANDIDATE STRATEGIES:
//   - Direct: a keyword used as-is
//   - Prefix/Suffix: keyword glued to fixed affix word lists ("gettask", "taskify")
//   - Compound: two keywords or keyword+action concatenated ("taskforge")
//   - Portmanteau: vowel-boundary, overlap, and ratio blending (blend.go)
//   - Tech combo: keyword joined with recognized tech terms ("taskhub")
//   - Spelling variation: vowel-dropped, +ify, and +ly variants ("tskmngr" style)
//
// Strategy order never affects output membership since candidates land in a
// set. The final ordering comes entirely from scoring: overall descending,
// shorter name preferred on ties.
package generate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nameforge-dev/nameforge/internal/logging"
	"github.com/nameforge-dev/nameforge/internal/score"
	"github.com/nameforge-dev/nameforge/internal/validate"
)

// Candidate format bounds. The overall window is what validate.CandidateName
// enforces; individual strategies apply their own tighter limits.
const (
	minCandidateLen = 4
	maxCandidateLen = 15

	directMinLen   = 4
	directMaxLen   = 12
	affixMaxLen    = 14
	compoundMaxLen = 14

	// Cap on keywords fed into pairwise strategies so pathological
	// descriptions don't explode the candidate set quadratically
	maxPairKeywords = 10
)

// ErrNoKeywords is returned when a description yields no usable keywords,
// such as an empty string or one made entirely of stop words.
var ErrNoKeywords = errors.New("no usable keywords found in description")

// Options configures a generation run. Zero values are replaced with the
// defaults from DefaultOptions.
type Options struct {
	MaxSuggestions int `json:"maxSuggestions"` // Cap on returned suggestions
	MinScore       int `json:"minScore"`       // Quality floor, 0-100
}

// DefaultOptions returns the standard generation preset: a full candidate
// run trimmed to the 20 best names scoring at least 55.
func DefaultOptions() Options {
	return Options{MaxSuggestions: 20, MinScore: 55}
}

// QuickOptions returns a preset for fast interactive runs: fewer results
// with a slightly lower quality floor, useful for exploratory sessions.
func QuickOptions() Options {
	return Options{MaxSuggestions: 10, MinScore: 50}
}

// withDefaults fills unset option fields from DefaultOptions.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.MaxSuggestions <= 0 {
		o.MaxSuggestions = defaults.MaxSuggestions
	}
	if o.MinScore <= 0 {
		o.MinScore = defaults.MinScore
	}
	return o
}

// Suggestion is a scored candidate name. Immutable once produced.
type Suggestion struct {
	Name    string       `json:"name"`
	Score   int          `json:"score"`
	Scoring score.Result `json:"scoring"`
}

// GradeBuckets partitions suggestions by grade tier for quality-first
// browsing: premium (A grades), good (B grades), acceptable (C grades),
// plus the full unfiltered list.
type GradeBuckets struct {
	Premium    []Suggestion `json:"premium"`
	Good       []Suggestion `json:"good"`
	Acceptable []Suggestion `json:"acceptable"`
	All        []Suggestion `json:"all"`
}

// Generate produces ranked name suggestions for a project description.
// Returns ErrNoKeywords when the description contains nothing to work with;
// any other outcome is a (possibly empty) suggestion list.
func Generate(description string, opts Options) ([]Suggestion, error) {
	opts = opts.withDefaults()

	keywords := ExtractKeywords(description)
	if len(keywords) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoKeywords, description)
	}

	candidates := buildCandidates(keywords)
	logging.Debug("Generated %d candidates from %d keywords", len(candidates), len(keywords))

	suggestions := scoreAndRank(candidates, opts)
	logging.Debug("Kept %d suggestions above score %d", len(suggestions), opts.MinScore)

	return suggestions, nil
}

// GenerateByGrade runs a large generation pass (top 100) and partitions the
// results into grade tiers. The MaxSuggestions option is ignored; MinScore
// still applies to the underlying run.
func GenerateByGrade(description string, opts Options) (GradeBuckets, error) {
	opts = opts.withDefaults()
	opts.MaxSuggestions = 100

	suggestions, err := Generate(description, opts)
	if err != nil {
		return GradeBuckets{}, err
	}

	buckets := GradeBuckets{All: suggestions}
	for _, s := range suggestions {
		switch s.Scoring.Grade[0] {
		case 'A':
			buckets.Premium = append(buckets.Premium, s)
		case 'B':
			buckets.Good = append(buckets.Good, s)
		case 'C':
			buckets.Acceptable = append(buckets.Acceptable, s)
		}
	}
	return buckets, nil
}

// buildCandidates unions all generation strategies into one deduplicated
// candidate set. Every candidate passes the global format filter before
// entering the set.
func buildCandidates(keywords []string) []string {
	set := make(map[string]struct{})
	add := func(name string) {
		if validate.IsCandidateName(name, minCandidateLen, maxCandidateLen) {
			set[name] = struct{}{}
		}
	}

	pairKeywords := keywords
	if len(pairKeywords) > maxPairKeywords {
		pairKeywords = pairKeywords[:maxPairKeywords]
	}

	// Direct: keywords in the direct length window stand on their own
	for _, kw := range keywords {
		if len(kw) >= directMinLen && len(kw) <= directMaxLen {
			add(kw)
		}
	}

	// Prefix and suffix affixing
	for _, kw := range keywords {
		for _, prefix := range namePrefixes {
			if len(prefix)+len(kw) <= affixMaxLen {
				add(prefix + kw)
			}
		}
		for _, suffix := range nameSuffixes {
			if len(kw)+len(suffix) <= affixMaxLen {
				add(kw + suffix)
			}
		}
	}

	// Compound: keyword pairs in both orders, plus keyword+action combos
	for i, kw1 := range pairKeywords {
		for j, kw2 := range pairKeywords {
			if i == j {
				continue
			}
			if len(kw1)+len(kw2) <= compoundMaxLen {
				add(kw1 + kw2)
			}
		}
		for _, action := range actionWords {
			if kw1 == action {
				continue
			}
			if len(kw1)+len(action) <= compoundMaxLen {
				add(kw1 + action)
				add(action + kw1)
			}
		}
	}

	// Portmanteau blends over ordered keyword pairs
	for i, kw1 := range pairKeywords {
		for j, kw2 := range pairKeywords {
			if i == j {
				continue
			}
			for _, blend := range blendWords(kw1, kw2) {
				add(blend)
			}
		}
	}

	// Tech-term combination in both orders
	for _, kw := range keywords {
		for _, term := range techTerms {
			if kw == term {
				continue
			}
			if len(kw)+len(term) <= compoundMaxLen {
				add(kw + term)
				add(term + kw)
			}
		}
	}

	// Spelling variations
	for _, kw := range keywords {
		if dropped := dropLastVowel(kw); dropped != "" {
			add(dropped)
		}
		if len(kw) >= 4 && len(kw) <= 8 {
			add(kw + "ify")
		}
		if len(kw) >= 4 && len(kw) <= 7 {
			add(kw + "ly")
		}
	}

	candidates := make([]string, 0, len(set))
	for name := range set {
		candidates = append(candidates, name)
	}
	return candidates
}

// dropLastVowel produces a vowel-dropped spelling variant ("flickr" style).
// Only applies to words of length >= 6 with at least two vowels, and only
// when the result stays at least 5 characters.
func dropLastVowel(word string) string {
	if len(word) < 6 {
		return ""
	}
	vowelCount := 0
	for _, c := range word {
		if strings.ContainsRune("aeiou", c) {
			vowelCount++
		}
	}
	if vowelCount < 2 {
		return ""
	}

	idx := strings.LastIndexAny(word, "aeiou")
	if idx < 0 {
		return ""
	}
	dropped := word[:idx] + word[idx+1:]
	if len(dropped) < 5 {
		return ""
	}
	return dropped
}

// scoreAndRank scores every candidate, drops those under the quality floor,
// and returns the top MaxSuggestions ordered by score descending with
// shorter names winning ties.
func scoreAndRank(candidates []string, opts Options) []Suggestion {
	suggestions := make([]Suggestion, 0, len(candidates))
	for _, name := range candidates {
		result := score.Score(name)
		if result.Overall < opts.MinScore {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Name:    name,
			Score:   result.Overall,
			Scoring: result,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		if len(suggestions[i].Name) != len(suggestions[j].Name) {
			return len(suggestions[i].Name) < len(suggestions[j].Name)
		}
		return suggestions[i].Name < suggestions[j].Name
	})

	if len(suggestions) > opts.MaxSuggestions {
		suggestions = suggestions[:opts.MaxSuggestions]
	}
	return suggestions
}
