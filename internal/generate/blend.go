// Portmanteau blending: merging two words into one candidate name the way
// "breakfast" and "lunch" make "brunch". Three independent techniques are
// applied to each word pair; all results within the blend length window are
// kept as candidates.

package generate

import "strings"

const (
	blendMinLen = 5
	blendMaxLen = 12
)

// blendWords produces portmanteau candidates for a word pair using vowel
// boundary, overlap, and fixed-ratio blending. Only blends whose length
// lands in [5,12] are returned.
func blendWords(w1, w2 string) []string {
	var blends []string

	if b := vowelBoundaryBlend(w1, w2); blendLengthOK(b) {
		blends = append(blends, b)
	}
	if b := overlapBlend(w1, w2); blendLengthOK(b) {
		blends = append(blends, b)
	}
	if b := ratioBlend(w1, w2); blendLengthOK(b) {
		blends = append(blends, b)
	}

	return blends
}

// vowelBoundaryBlend truncates the first word after its last vowel and the
// second word before its first vowel, joining at the natural syllable seam.
// Returns "" when either word lacks a vowel to anchor on.
func vowelBoundaryBlend(w1, w2 string) string {
	lastVowel := strings.LastIndexAny(w1, "aeiou")
	firstVowel := strings.IndexAny(w2, "aeiou")
	if lastVowel < 0 || firstVowel < 0 {
		return ""
	}
	return w1[:lastVowel+1] + w2[firstVowel:]
}

// overlapBlend merges two words at a shared boundary: when a suffix of the
// first word equals a prefix of the second (checking overlap lengths 2
// through 4, longest first), the words are joined once at that overlap.
// Returns "" when no overlap exists.
func overlapBlend(w1, w2 string) string {
	for k := 4; k >= 2; k-- {
		if k > len(w1) || k > len(w2) {
			continue
		}
		if w1[len(w1)-k:] == w2[:k] {
			return w1 + w2[k:]
		}
	}
	return ""
}

// ratioBlend takes the first 60% of the first word and the last 40% of the
// second, a blunt cut that works surprisingly often for name-length words.
func ratioBlend(w1, w2 string) string {
	head := (len(w1)*6 + 9) / 10 // ceil(len*0.6)
	tail := (len(w2) * 4) / 10   // floor(len*0.4)
	if head <= 0 || tail <= 0 {
		return ""
	}
	return w1[:head] + w2[len(w2)-tail:]
}

// blendLengthOK reports whether a blend result is inside the keep window.
func blendLengthOK(b string) bool {
	return len(b) >= blendMinLen && len(b) <= blendMaxLen
}
