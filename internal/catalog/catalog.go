package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	ErrDuplicateManufacturer = errors.New("duplicate manufacturer")
	ErrDuplicateModel        = errors.New("duplicate model")
)

// Manufacturer is one catalog entry: its canonical name, optional literal
// spellings seen in titles, and its models grouped by category.
type Manufacturer struct {
	Name    string
	Aliases []string
	Models  map[Category][]string

	// order is the category order of the catalog file.
	order []Category
}

// Catalog is the immutable reference list of manufacturers and models.
// Manufacturer order is the order they were loaded in and is significant:
// the classifier returns the first manufacturer that yields a match.
type Catalog struct {
	manufacturers []Manufacturer
	index         map[string]int
}

// New validates the given manufacturers and builds a Catalog from them.
// The input is copied, later changes to it do not affect the Catalog.
func New(manufacturers []Manufacturer) (*Catalog, error) {
	c := &Catalog{
		manufacturers: make([]Manufacturer, 0, len(manufacturers)),
		index:         make(map[string]int, len(manufacturers)),
	}

	for _, m := range manufacturers {
		name := norm.NFC.String(strings.TrimSpace(m.Name))
		if name == "" {
			return nil, errors.New("manufacturer without name")
		}

		if _, ok := c.index[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateManufacturer, name)
		}

		entry := Manufacturer{
			Name:   name,
			Models: make(map[Category][]string, len(m.Models)),
		}

		for _, alias := range m.Aliases {
			if alias = norm.NFC.String(strings.TrimSpace(alias)); alias != "" {
				entry.Aliases = append(entry.Aliases, alias)
			}
		}

		for category, models := range m.Models {
			if !category.Valid() {
				return nil, fmt.Errorf("manufacturer %s: %w: %q", name, ErrUnknownCategory, category)
			}

			seen := make(map[string]struct{}, len(models))
			list := make([]string, 0, len(models))

			for _, model := range models {
				model = norm.NFC.String(strings.TrimSpace(model))
				if model == "" {
					continue
				}

				if _, dup := seen[model]; dup {
					return nil, fmt.Errorf("%w: %s %s (%s)", ErrDuplicateModel, name, model, category)
				}

				seen[model] = struct{}{}
				list = append(list, model)
			}

			if len(list) > 0 {
				entry.Models[category] = list
			}
		}

		entry.order = categoryOrder(m.order, entry.Models)

		c.index[name] = len(c.manufacturers)
		c.manufacturers = append(c.manufacturers, entry)
	}

	return c, nil
}

// categoryOrder returns the categories with models, preferred ones first and
// the rest in enum order.
func categoryOrder(preferred []Category, models map[Category][]string) []Category {
	var order []Category

	seen := make(map[Category]bool, len(models))

	for _, list := range [][]Category{preferred, Categories} {
		for _, category := range list {
			if len(models[category]) > 0 && !seen[category] {
				seen[category] = true
				order = append(order, category)
			}
		}
	}

	return order
}

// Manufacturers returns all manufacturers in catalog order.
// Callers must treat the returned entries as read-only.
func (c *Catalog) Manufacturers() []Manufacturer {
	return c.manufacturers
}

// Len returns the number of manufacturers.
func (c *Catalog) Len() int {
	return len(c.manufacturers)
}

// Manufacturer looks up a manufacturer by its canonical name.
func (c *Catalog) Manufacturer(name string) (Manufacturer, bool) {
	i, ok := c.index[name]
	if !ok {
		return Manufacturer{}, false
	}

	return c.manufacturers[i], true
}

// Models returns the models of a manufacturer in the given category, in catalog order.
func (c *Catalog) Models(manufacturer string, category Category) []string {
	m, ok := c.Manufacturer(manufacturer)
	if !ok {
		return nil
	}

	return m.Models[category]
}

// Contains reports whether manufacturer+model is a pair drawn from the catalog.
func (c *Catalog) Contains(manufacturer, model string) bool {
	m, ok := c.Manufacturer(manufacturer)
	if !ok {
		return false
	}

	for _, models := range m.Models {
		for _, candidate := range models {
			if candidate == model {
				return true
			}
		}
	}

	return false
}

// Categories returns the categories the manufacturer has models in, in the order
// of the catalog file, or in enum order for manufacturers built with New.
func (m Manufacturer) Categories() []Category {
	if m.order != nil {
		return m.order
	}

	return categoryOrder(nil, m.Models)
}

// SingleCategory maps each category to the manufacturers (catalog order) whose
// models all belong to that one category.
func (c *Catalog) SingleCategory() map[Category][]Manufacturer {
	out := make(map[Category][]Manufacturer)

	for _, m := range c.manufacturers {
		categories := m.Categories()
		if len(categories) != 1 {
			continue
		}

		out[categories[0]] = append(out[categories[0]], m)
	}

	return out
}
