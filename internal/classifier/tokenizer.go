package classifier

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// punctuation is the ASCII punctuation set minus '-' and '/', which are part of
// model designators such as "DG-100" or "400/180".
const punctuation = "!\"#$%&'()*+,.:;<=>?@[\\]^_`{|}~"

// Tokenize strips punctuation from text and splits it on whitespace.
// Case is preserved; the quirk predicates of the joiner are case-sensitive.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}

		return r
	}, norm.NFC.String(text))

	return strings.Fields(cleaned)
}

// BuildTokens runs the full token pipeline for a title: tokenize, re-join
// over-split designators, drop stopwords.
func BuildTokens(title string) []string {
	return RemoveStopwords(JoinSingleCharacters(Tokenize(title)))
}
