// Package score rates domain name candidates for overall quality, combining
// pronounceability with length, brandability, memorability, and typing-ease
// sub-scores into one weighted score and a letter grade.
//
// SCORING MODEL:
// Five independent sub-scores, each clamped to [0,100] and computed from the
// candidate string alone:
//
//   - Pronounceability (30%): delegated to the pronounce package
//   - Length (25%): step function peaking at 6-8 characters
//   - Brandability (20%): startup-style suffixes, character variety
//   - Memorability (15%): repetition and familiar word endings
//   - Typing ease (10%): awkward bigrams and keyboard hand alternation
//
// The weighted sum is rounded and mapped through an 11-step grade table
// (A+ down to F). Scoring is deterministic and stateless: the same input
// always produces the same result.
package score

import (
	"math"
	"sort"
	"strings"

	"github.com/nameforge-dev/nameforge/internal/pronounce"
)

// Sub-score weights. Pronounceability dominates because an unsayable name
// fails as a brand no matter how short it is.
const (
	weightPronounceability = 0.30
	weightLength           = 0.25
	weightBrandability     = 0.20
	weightMemorability     = 0.15
	weightTypingEase       = 0.10
)

// hardToSayThreshold marks names whose pronounceability is so poor that the
// weighted sum alone understates the problem; overall score takes an extra
// penalty below this line.
const (
	hardToSayThreshold = 30
	hardToSayPenalty   = 20
)

// brandableSuffixes are endings strongly associated with product and startup
// names. A candidate ending with one of these reads as intentional branding.
var brandableSuffixes = []string{
	"ify", "ly", "io", "app", "hub", "kit", "box", "base", "flow",
}

// memorableSuffixes are common English word endings that make a name feel
// like a real word.
var memorableSuffixes = []string{"ing", "er", "ly", "ed", "ify"}

// awkwardBigrams are letter pairs that force uncomfortable finger travel
// or simply never occur in typeable words.
var awkwardBigrams = []string{"qz", "xz", "zx", "qx", "jq", "vq"}

// leftHandKeys covers the left half of a QWERTY layout. Anything not here
// is treated as a right-hand key for alternation analysis.
const leftHandKeys = "qwertasdfgzxcvb12345"

// Breakdown holds the five independent sub-scores for a candidate name.
// Each value is in [0,100].
type Breakdown struct {
	Pronounceability int `json:"pronounceability"`
	Length           int `json:"length"`
	Brandability     int `json:"brandability"`
	Memorability     int `json:"memorability"`
	TypingEase       int `json:"typingEase"`
}

// Result is the complete quality assessment for a candidate name.
type Result struct {
	Overall   int       `json:"overall"`
	Grade     string    `json:"grade"`
	Breakdown Breakdown `json:"breakdown"`
}

// Ranked pairs a name with its quality result for sorted output.
type Ranked struct {
	Name   string `json:"name"`
	Result Result `json:"result"`
}

// Score computes the full quality assessment for a candidate name.
// Pure function: identical inputs always yield identical results.
func Score(name string) Result {
	n := strings.ToLower(name)

	breakdown := Breakdown{
		Pronounceability: pronounce.Score(n),
		Length:           scoreLength(n),
		Brandability:     scoreBrandability(name),
		Memorability:     scoreMemorability(n),
		TypingEase:       scoreTypingEase(n),
	}

	overall := int(math.Round(
		weightPronounceability*float64(breakdown.Pronounceability) +
			weightLength*float64(breakdown.Length) +
			weightBrandability*float64(breakdown.Brandability) +
			weightMemorability*float64(breakdown.Memorability) +
			weightTypingEase*float64(breakdown.TypingEase)))

	// Names that are nearly impossible to say get knocked below the weighted
	// sum so they can't coast on good length and typing scores.
	if breakdown.Pronounceability < hardToSayThreshold {
		overall -= hardToSayPenalty
	}
	overall = clamp(overall)

	return Result{
		Overall:   overall,
		Grade:     Grade(overall),
		Breakdown: breakdown,
	}
}

// Grade maps an overall score to its letter grade. The boundaries are
// monotonic and exhaustive: every integer in [0,100] maps to exactly one
// of the 11 grades.
func Grade(overall int) string {
	switch {
	case overall >= 95:
		return "A+"
	case overall >= 90:
		return "A"
	case overall >= 85:
		return "A-"
	case overall >= 80:
		return "B+"
	case overall >= 75:
		return "B"
	case overall >= 70:
		return "B-"
	case overall >= 65:
		return "C+"
	case overall >= 60:
		return "C"
	case overall >= 55:
		return "C-"
	case overall >= 50:
		return "D"
	default:
		return "F"
	}
}

// Rank scores every name, drops those below minScore, and returns the rest
// sorted by overall score descending. The sort is stable so equal scores
// keep their input order.
func Rank(names []string, minScore int) []Ranked {
	ranked := make([]Ranked, 0, len(names))
	for _, name := range names {
		result := Score(name)
		if result.Overall >= minScore {
			ranked = append(ranked, Ranked{Name: name, Result: result})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Overall > ranked[j].Result.Overall
	})

	return ranked
}

// scoreLength rates a name by character count. 6-8 characters is ideal for
// domains: long enough to be a word, short enough to type and remember.
func scoreLength(name string) int {
	switch n := len(name); {
	case n <= 3:
		return 40
	case n == 4:
		return 60
	case n == 5:
		return 75
	case n >= 6 && n <= 8:
		return 100
	case n >= 9 && n <= 10:
		return 90
	case n == 11:
		return 75
	case n == 12:
		return 60
	case n == 13:
		return 45
	case n == 14:
		return 30
	default:
		return 20
	}
}

// scoreBrandability rates how much a name reads like an intentional brand:
// recognizable startup suffixes and character variety help, digits and
// hyphens hurt.
func scoreBrandability(name string) int {
	score := 50
	lower := strings.ToLower(name)

	for _, suffix := range brandableSuffixes {
		if strings.HasSuffix(lower, suffix) {
			score += 20
			break
		}
	}

	if name == lower {
		score += 10
	}

	if uniqueCharRatio(lower) >= 0.6 {
		score += 15
	}

	if strings.ContainsAny(name, "0123456789") {
		score -= 20
	}
	if strings.Contains(name, "-") {
		score -= 15
	}

	return clamp(score)
}

// scoreMemorability rates how easily a name sticks: doubled letters and
// familiar word endings help, degenerate repetition kills it.
func scoreMemorability(name string) int {
	if len(name) > 0 && strings.Count(name, string(name[0])) == len(name) {
		// A single repeated character is noise, not a name
		return 0
	}

	score := 50

	doubled := false
	tripled := false
	for i := 0; i+1 < len(name); i++ {
		if name[i] == name[i+1] {
			doubled = true
			if i+2 < len(name) && name[i] == name[i+2] {
				tripled = true
			}
		}
	}
	if tripled {
		score -= 25
	} else if doubled {
		score += 15
	}

	for _, suffix := range memorableSuffixes {
		if strings.HasSuffix(name, suffix) {
			score += 10
			break
		}
	}

	return clamp(score)
}

// scoreTypingEase rates physical typing comfort: awkward bigrams are
// penalized and alternating between keyboard halves earns a bonus.
func scoreTypingEase(name string) int {
	score := 70

	for _, bigram := range awkwardBigrams {
		if strings.Contains(name, bigram) {
			score -= 30
		}
	}

	if ratio := handAlternationRatio(name); ratio >= 0.5 {
		score += 20
	} else if ratio >= 0.3 {
		score += 10
	}

	return clamp(score)
}

// uniqueCharRatio returns the fraction of distinct characters in a name.
// Varied names are easier to tell apart from their neighbors in a list.
func uniqueCharRatio(name string) float64 {
	if name == "" {
		return 0
	}
	seen := make(map[byte]struct{}, len(name))
	for i := 0; i < len(name); i++ {
		seen[name[i]] = struct{}{}
	}
	return float64(len(seen)) / float64(len(name))
}

// handAlternationRatio returns the fraction of adjacent character pairs that
// switch between the left and right halves of a QWERTY keyboard. Higher
// alternation means smoother typing rhythm.
func handAlternationRatio(name string) float64 {
	if len(name) < 2 {
		return 0
	}

	alternations := 0
	for i := 0; i+1 < len(name); i++ {
		if isLeftHand(name[i]) != isLeftHand(name[i+1]) {
			alternations++
		}
	}
	return float64(alternations) / float64(len(name)-1)
}

// isLeftHand reports whether a character is typed with the left hand on a
// standard QWERTY layout.
func isLeftHand(c byte) bool {
	return strings.IndexByte(leftHandKeys, c) >= 0
}

// clamp bounds a score to the [0,100] range.
func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
