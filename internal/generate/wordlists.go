// Word tables backing the candidate generation strategies. These are fixed
// vocabularies: stop words filtered out of descriptions, affixes glued onto
// keywords, tech terms for compounding, and the recognition sets used to
// prioritize meaningful keywords ahead of generic ones.

package generate

// stopWords are description tokens that carry no naming signal. Tokens of
// length <= 2 are dropped before this set is even consulted.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "can": true, "had": true,
	"her": true, "was": true, "one": true, "our": true, "out": true,
	"has": true, "him": true, "his": true, "how": true, "its": true,
	"new": true, "now": true, "old": true, "see": true, "two": true,
	"who": true, "did": true, "get": true, "may": true, "way": true,
	"use": true, "with": true, "that": true, "this": true, "from": true,
	"they": true, "will": true, "would": true, "there": true, "their": true,
	"what": true, "about": true, "which": true, "when": true, "make": true,
	"like": true, "into": true, "your": true, "some": true, "could": true,
	"them": true, "other": true, "than": true, "then": true, "these": true,
	"want": true, "been": true, "have": true, "does": true, "where": true,
	"most": true, "also": true, "using": true, "used": true, "based": true,
	"helps": true, "help": true, "lets": true, "allows": true, "enables": true,
	"easily": true, "simple": true, "quickly": true,
}

// techTerms are recognized technology words. Keywords matching this set are
// stable-partitioned to the front of the extraction order, and the terms are
// also used directly as compounding material.
var techTerms = []string{
	"app", "api", "bot", "cloud", "code", "data", "dev", "lab", "link",
	"net", "stack", "sync", "tech", "web", "ai", "hub", "base", "grid",
	"byte", "bit", "pixel", "logic", "node",
}

// actionWords are recognized verbs that make names feel active. They get the
// same extraction priority as tech terms and are used in keyword+action
// compounds.
var actionWords = []string{
	"boost", "build", "craft", "drive", "forge", "launch", "manage",
	"plan", "run", "scan", "share", "ship", "snap", "spark", "start",
	"track", "grow", "move",
}

// namePrefixes are short openings prepended to keywords by the prefix
// strategy.
var namePrefixes = []string{
	"get", "go", "my", "try", "use", "the", "pro", "up", "on", "re",
}

// nameSuffixes are short endings appended to keywords by the suffix
// strategy. These skew toward startup-style TLD-adjacent endings.
var nameSuffixes = []string{
	"ify", "ly", "io", "hq", "app", "hub", "kit", "box", "base", "flow",
	"lab", "spot", "zone", "mate",
}

// isTechTerm reports whether a keyword is in the recognized tech vocabulary.
func isTechTerm(word string) bool {
	for _, t := range techTerms {
		if word == t {
			return true
		}
	}
	return false
}

// isActionWord reports whether a keyword is in the recognized action
// vocabulary.
func isActionWord(word string) bool {
	for _, a := range actionWords {
		if word == a {
			return true
		}
	}
	return false
}
