package classifier

import "strings"

// maxGramSize is the largest number of consecutive tokens compared as one unit.
const maxGramSize = 3

// BuildGrams returns all 1-grams, then all 2-grams, then all 3-grams of tokens,
// each joined by a single space. The order feeds the scorer's tie-break.
func BuildGrams(tokens []string) []string {
	var grams []string

	for n := 1; n <= maxGramSize; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}

	return grams
}
