package classifier

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// JoinSingleCharacters re-merges tokens that whitespace splitting tore apart.
//
// Tokens are consumed left to right into an output list whose last element is
// the fragment being built. The next token is glued onto the fragment when a
// glue quirk applies, when both are non-numeric and the fragment is shorter than
// two characters, or when it is the final token and a single character. It is
// joined with a space when a spaced quirk applies. Otherwise it starts a new
// fragment.
//
//	["DG", "800", "B"]         -> ["DG", "800B"]
//	["ASH", "25", "Mi"]        -> ["ASH 25 Mi"]
//	["DG800", "S", "HB-2352"]  -> ["DG800S", "HB-2352"]
func JoinSingleCharacters(tokens []string) []string {
	if len(tokens) < 2 {
		return slices.Clone(tokens)
	}

	// The fold starts from an empty fragment so the first token goes through the
	// same rules as every other one.
	joined := make([]string, 1, len(tokens)+1)

	for i := 0; i < len(tokens); i++ {
		next := tokens[i]
		last := len(joined) - 1
		current := joined[last]
		isFinal := i == len(tokens)-1

		switch {
		case anyRule(glueRules, current, next) ||
			(!isNumeric(current) && !isNumeric(next) && utf8.RuneCountInString(current) < 2) ||
			(isFinal && utf8.RuneCountInString(next) < 2):
			joined[last] = current + next
		case anyRule(spacedRules, current, next):
			joined[last] = current + " " + next

			if !isFinal && tokens[i+1] == motorSuffix {
				joined[last] += " " + motorSuffix
				i++
			}
		default:
			joined = append(joined, next)
		}
	}

	// A leading numeric token leaves the seed fragment empty. It is dropped
	// here rather than passed on as an empty token.
	if joined[0] == "" {
		joined = joined[1:]
	}

	return joined
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}
