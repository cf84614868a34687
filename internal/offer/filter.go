package offer

import "strings"

var (
	wantedTerms  = []string{"suche", "gesucht", "looking for", "searching"}
	charterTerms = []string{"charter", "for rent"}
)

// IsWanted reports whether a title announces a wanted ad instead of a sale.
func IsWanted(title string) bool {
	return containsAny(strings.ToLower(title), wantedTerms)
}

// IsCharter reports whether a title offers an aircraft for rent.
func IsCharter(title string) bool {
	return containsAny(strings.ToLower(title), charterTerms)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}

	return false
}
