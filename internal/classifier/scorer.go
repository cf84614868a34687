package classifier

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
)

const (
	// DefaultCutoff is the score a candidate has to exceed to be accepted.
	DefaultCutoff = 0.85
	// ShortCutoff replaces DefaultCutoff when the gram or the candidate is shorter
	// than shortLength characters; short strings reach high similarity by chance.
	ShortCutoff = 0.90

	shortLength = 4

	exactScore     = 1.0
	compactScore   = 0.98
	substringScore = 0.95

	minSubstringLength = 3
	minSubstringRatio  = 0.7

	// tieTolerance is the score difference under which two candidates count as equal.
	tieTolerance = 0.01
)

// Score returns the similarity of a gram and a candidate model name in [0, 1].
// The first applicable rule wins:
//  1. equal ignoring case: 1.0
//  2. equal ignoring case and spaces ("AS33" vs "AS 33"): 0.98
//  3. one contains the other, the candidate has at least 3 characters and the
//     shorter is at least 70% of the longer ("172" in "172D"): 0.95
//  4. Jaro similarity of the lowercased strings, with half the transpositions
//     rounded down
func Score(gram, candidate string) float64 {
	g := strings.ToLower(gram)
	c := strings.ToLower(candidate)

	if g == c {
		return exactScore
	}

	if compact(g) == compact(c) {
		return compactScore
	}

	gLen := utf8.RuneCountInString(g)
	cLen := utf8.RuneCountInString(c)

	if cLen >= minSubstringLength && (strings.Contains(g, c) || strings.Contains(c, g)) &&
		float64(min(gLen, cLen))/float64(max(gLen, cLen)) >= minSubstringRatio {
		return substringScore
	}

	return jaro(g, c)
}

// Cutoff returns the score a gram/candidate pair has to exceed to be accepted.
func Cutoff(gram, candidate string) float64 {
	if utf8.RuneCountInString(gram) < shortLength || utf8.RuneCountInString(candidate) < shortLength {
		return ShortCutoff
	}

	return DefaultCutoff
}

func compact(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Match is an accepted candidate: the model of category that matched gram.
type Match struct {
	Category catalog.Category
	Model    string
	Gram     string
	Score    float64
}

// bestMatch tracks the best candidate seen so far for one manufacturer.
type bestMatch struct {
	match    Match
	found    bool
	modelLen int
	gramLen  int
}

// consider replaces the current best with m when m beats the cutoff, scores at
// least as high and comes from a gram at least as long. When the scores are
// within tieTolerance, m also needs a longer model name or a longer gram.
func (b *bestMatch) consider(m Match, cutoff float64) bool {
	modelLen := utf8.RuneCountInString(m.Model)
	gramLen := utf8.RuneCountInString(m.Gram)

	if m.Score <= cutoff || m.Score < b.match.Score || gramLen < b.gramLen {
		return false
	}

	if math.Abs(m.Score-b.match.Score) < tieTolerance && modelLen <= b.modelLen && gramLen <= b.gramLen {
		return false
	}

	b.match = m
	b.found = true
	b.modelLen = modelLen
	b.gramLen = gramLen

	return true
}
