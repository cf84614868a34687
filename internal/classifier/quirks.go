package classifier

import "regexp"

// Lexical quirks of specific manufacturers' designators. Each rule looks at the
// fragment built so far and the next raw token.

var (
	dgModelRe         = regexp.MustCompile(`^DG[0-9]{3,4}$`)
	binderModelRe     = regexp.MustCompile(`^(EB28|EB29)$`)
	schleicherModelRe = regexp.MustCompile(`^AS[HWKG]\s?[0-9]{2}(\sMi)?$`)
)

// motorSuffix marks the self-launching variant of Schleicher gliders ("ASH 25 Mi").
const motorSuffix = "Mi"

// IsDGModel reports whether fragment is a complete DG designator written without
// a dash, such as "DG800". A variant letter that follows belongs to it ("DG800" + "S").
func IsDGModel(fragment string) bool {
	return dgModelRe.MatchString(fragment)
}

// IsBinderModel reports whether s is a Binder designator ("EB" + "28").
func IsBinderModel(s string) bool {
	return binderModelRe.MatchString(s)
}

// IsSchleicherModel reports whether s is an AS[HWKG] designator with its two digit
// number, with or without a space ("ASW19", "ASH 25", "ASH 25 Mi").
func IsSchleicherModel(s string) bool {
	return schleicherModelRe.MatchString(s)
}

// glueRules append the next token to the current fragment without a space.
var glueRules = []func(current, next string) bool{
	func(current, _ string) bool { return IsDGModel(current) },
	func(current, next string) bool { return IsBinderModel(current + next) },
}

// spacedRules append the next token to the current fragment with a space and
// absorb a following motorSuffix token.
var spacedRules = []func(current, next string) bool{
	func(current, next string) bool { return IsSchleicherModel(current + next) },
}

func anyRule(rules []func(current, next string) bool, current, next string) bool {
	for _, rule := range rules {
		if rule(current, next) {
			return true
		}
	}

	return false
}
