package classifier

import (
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

// Name identifies this classifier on stored classifications.
const Name = "rule_based"

// Classifier assigns offer titles to a manufacturer and model of the catalog.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	catalog  *catalog.Catalog
	fallback *CategoryClassifier
	workers  int
}

type Option func(*Classifier)

// WithWorkers bounds the number of titles ClassifyMany works on at once.
// Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Classifier) {
		if n > 0 {
			c.workers = n
		}
	}
}

func New(cat *catalog.Catalog, opts ...Option) *Classifier {
	c := &Classifier{
		catalog:  cat,
		fallback: NewCategoryClassifier(cat),
		workers:  runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Classifier) Name() string {
	return Name
}

// Explanation shows how a title was classified.
type Explanation struct {
	Tokens       []string
	Grams        []string
	Manufacturer string
	Match        *Match
}

// Explain runs the matcher on title and reports the intermediate tokens and
// grams along with the winning match, if any.
//
// Manufacturers are tried in catalog order and the first one with an accepted
// candidate wins; later manufacturers are not compared against it.
func (c *Classifier) Explain(title string, category catalog.Category) Explanation {
	tokens := BuildTokens(title)
	grams := BuildGrams(tokens)

	exp := Explanation{Tokens: tokens, Grams: grams}
	if len(grams) == 0 {
		return exp
	}

	for _, m := range c.catalog.Manufacturers() {
		match, ok := bestModel(m, searchCategories(m, category), grams)
		if !ok {
			continue
		}

		exp.Manufacturer = m.Name
		exp.Match = &match

		return exp
	}

	return exp
}

// Classify matches a single title. category restricts the search to models of
// that category; an empty category searches all of them.
func (c *Classifier) Classify(title string, category catalog.Category) offer.ClassificationResult {
	exp := c.Explain(title, category)
	if exp.Match != nil {
		return offer.ClassificationResult{
			Category:     exp.Match.Category,
			Manufacturer: exp.Manufacturer,
			Model:        exp.Match.Model,
		}
	}

	result := offer.Unknown()

	if category == "" {
		if guess, ok := c.fallback.Classify(title); ok {
			result.Category = guess
		}
	}

	return result
}

// ClassifyMany classifies a batch of offers in parallel and returns the results
// keyed by offer id. The result does not depend on the number of workers.
func (c *Classifier) ClassifyMany(offers []offer.UnclassifiedOffer) map[string]offer.ClassificationResult {
	results := make([]offer.ClassificationResult, len(offers))

	var g errgroup.Group

	g.SetLimit(c.workers)

	for i, o := range offers {
		g.Go(func() error {
			results[i] = c.Classify(o.Title, o.Category)
			return nil
		})
	}

	_ = g.Wait()

	out := make(map[string]offer.ClassificationResult, len(offers))
	for i, o := range offers {
		out[o.ID] = results[i]
	}

	return out
}

// searchCategories returns the categories of m to search, in catalog order
// when no category is given.
func searchCategories(m catalog.Manufacturer, category catalog.Category) []catalog.Category {
	if category == "" {
		return m.Categories()
	}

	return []catalog.Category{category}
}

// bestModel scores every (category, model, gram) combination of one manufacturer.
func bestModel(m catalog.Manufacturer, categories []catalog.Category, grams []string) (Match, bool) {
	var best bestMatch

	for _, category := range categories {
		for _, model := range m.Models[category] {
			for _, gram := range grams {
				candidate := Match{
					Category: category,
					Model:    model,
					Gram:     gram,
					Score:    Score(gram, model),
				}

				if best.consider(candidate, Cutoff(gram, model)) {
					slog.Debug("new best candidate",
						"manufacturer", m.Name,
						"model", model,
						"gram", gram,
						"score", candidate.Score,
					)
				}
			}
		}
	}

	return best.match, best.found
}
