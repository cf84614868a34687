package classifier

import (
	"strings"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
)

// CategoryClassifier guesses only the category of a title, from manufacturers
// that build exactly one category of aircraft. It is the fallback for titles
// the model matcher could not place.
type CategoryClassifier struct {
	entries []categoryEntry
}

type categoryEntry struct {
	category catalog.Category
	names    []string
}

func NewCategoryClassifier(cat *catalog.Catalog) *CategoryClassifier {
	single := cat.SingleCategory()

	f := &CategoryClassifier{}

	for _, category := range catalog.Categories {
		for _, m := range single[category] {
			names := append([]string{m.Name}, m.Aliases...)
			f.entries = append(f.entries, categoryEntry{category: category, names: names})
		}
	}

	return f
}

// Classify returns the category of the first single-category manufacturer whose
// name or alias appears literally in title.
func (f *CategoryClassifier) Classify(title string) (catalog.Category, bool) {
	for _, entry := range f.entries {
		for _, name := range entry.names {
			if strings.Contains(title, name) {
				return entry.category, true
			}
		}
	}

	return "", false
}
