package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

// Category is the aircraft type an offer or a model belongs to.
type Category string

const (
	CategoryGlider     Category = "glider"
	CategoryTMG        Category = "tmg"
	CategoryAirplane   Category = "airplane"
	CategoryUltralight Category = "ultralight"
	CategoryHelicopter Category = "helicopter"
)

// Categories lists every known category in search order.
var Categories = []Category{
	CategoryGlider,
	CategoryTMG,
	CategoryAirplane,
	CategoryUltralight,
	CategoryHelicopter,
}

// aliases maps the German spellings used by listing sites onto categories.
var aliases = map[string]Category{
	"segelflugzeug": CategoryGlider,
	"segelflieger":  CategoryGlider,
	"motorsegler":   CategoryTMG,
	"motorflugzeug": CategoryAirplane,
	"flugzeug":      CategoryAirplane,
	"ultraleicht":   CategoryUltralight,
	"ul":            CategoryUltralight,
	"hubschrauber":  CategoryHelicopter,
	"helikopter":    CategoryHelicopter,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory resolves a category name, case-insensitively. German aliases are accepted.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if c := Category(name); c.Valid() {
		return c, nil
	}

	if c, ok := aliases[name]; ok {
		return c, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
