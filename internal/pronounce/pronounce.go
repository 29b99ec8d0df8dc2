// Package pronounce scores strings for phonetic plausibility based on their
// vowel/consonant structure. The scorer is a pure function over strings: no
// dictionaries, no external state, just structural heuristics that separate
// names a human can say out loud from keyboard mash.
//
// SCORING MODEL:
// Every word starts at a neutral base of 50 and accumulates adjustments:
//
//   - Vowel-to-consonant ratio: balanced words read naturally
//   - Letter run structure: long consonant or vowel runs are hard to say
//   - Syllable clusters: pronounceable words have a sane syllable count
//   - Pattern bonuses: consonant-vowel openings, vowel-consonant endings
//   - Pattern penalties: consonant pileups, unpronounceable starts
//   - Length bonus: 6-10 character words are the sweet spot
//
// The final score is clamped to [0,100]. Penalties stack: a word matching
// several bad patterns is penalized for each one independently.
package pronounce

import (
	"regexp"
	"strings"
)

// PronounceableThreshold is the minimum score for IsPronounceable.
const PronounceableThreshold = 60

// vowels includes y, which behaves as a vowel in most name-like words
// ("taskly", "shopify"). The regex patterns below intentionally use narrower
// or wider sets depending on what each pattern is detecting.
const vowels = "aeiouy"

var (
	// Structural bonuses, +5 each when matched
	goodPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[^aeiou][aeiou]`), // consonant-vowel start
		regexp.MustCompile(`[aeiou][^aeiou]$`), // vowel-consonant end
		regexp.MustCompile(`[aeiou]{2}`),       // double vowel
	}

	// Structural penalties, -25 each when matched
	badPatterns = []*regexp.Regexp{
		regexp.MustCompile(`[^aeiouy]{4}`),  // 4+ consecutive consonants
		regexp.MustCompile(`[^aeiou]{5}`),   // 5+ consecutive non-vowels
		regexp.MustCompile(`^[^aeiouy]{3}`), // 3+ consonants at word start
	}
)

// isVowel reports whether c counts as a vowel for structural analysis.
func isVowel(c byte) bool {
	return strings.IndexByte(vowels, c) >= 0
}

// Score rates a word's phonetic plausibility on a 0-100 scale.
// Words shorter than 3 characters score 20, words longer than 20 score 10;
// everything else is evaluated structurally from a base of 50.
func Score(word string) int {
	w := strings.ToLower(word)
	n := len(w)

	if n < 3 {
		return 20
	}
	if n > 20 {
		return 10
	}

	score := 50

	// Vowel-to-consonant balance
	vowelCount := 0
	for i := 0; i < n; i++ {
		if isVowel(w[i]) {
			vowelCount++
		}
	}
	consonantCount := n - vowelCount

	// All-vowel words have no consonants to balance against; treat the
	// ratio as out of range rather than dividing by zero.
	ratio := 2.0
	if consonantCount > 0 {
		ratio = float64(vowelCount) / float64(consonantCount)
	}
	switch {
	case ratio >= 0.4 && ratio <= 0.8:
		score += 20
	case ratio >= 0.3 && ratio <= 1.0:
		score += 10
	default:
		score -= 15
	}

	// Letter run structure: humans stumble over long same-class runs
	maxConsonantRun, maxVowelRun := letterRuns(w)
	if maxConsonantRun <= 3 && maxVowelRun <= 2 {
		score += 15
	} else {
		score -= 20
	}

	// Syllable heuristic: count maximal vowel clusters
	clusters := vowelClusters(w)
	if n >= 6 && n <= 12 {
		if clusters >= 2 && clusters <= 4 {
			score += 15
		}
	} else {
		if clusters >= 1 && clusters <= 3 {
			score += 15
		}
	}

	// Pattern bonuses and penalties are cumulative across matches
	for _, p := range goodPatterns {
		if p.MatchString(w) {
			score += 5
		}
	}
	for _, p := range badPatterns {
		if p.MatchString(w) {
			score -= 25
		}
	}

	// Length bonus for the brandable sweet spot
	if n >= 6 && n <= 10 {
		score += 10
	} else if n >= 11 && n <= 12 {
		score += 5
	}

	return clamp(score)
}

// IsPronounceable reports whether a word clears the pronounceability bar.
func IsPronounceable(word string) bool {
	return Score(word) >= PronounceableThreshold
}

// letterRuns returns the longest consecutive consonant run and the longest
// consecutive vowel run in the word.
func letterRuns(w string) (maxConsonant, maxVowel int) {
	consonantRun, vowelRun := 0, 0
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			vowelRun++
			consonantRun = 0
		} else {
			consonantRun++
			vowelRun = 0
		}
		if consonantRun > maxConsonant {
			maxConsonant = consonantRun
		}
		if vowelRun > maxVowel {
			maxVowel = vowelRun
		}
	}
	return maxConsonant, maxVowel
}

// vowelClusters counts maximal runs of vowel characters, a cheap stand-in
// for syllable count.
func vowelClusters(w string) int {
	clusters := 0
	inCluster := false
	for i := 0; i < len(w); i++ {
		if isVowel(w[i]) {
			if !inCluster {
				clusters++
				inCluster = true
			}
		} else {
			inCluster = false
		}
	}
	return clusters
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
