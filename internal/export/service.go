package export

import (
	"cmp"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

var header = []string{"id", "url", "title", "category", "manufacturer", "model", "classifier", "classified_at"}

// Service exports stored offers with their classification.
type Service struct {
	offers *offer.Service
}

// NewService creates a new export Service.
func NewService(offerService *offer.Service) *Service {
	return &Service{offers: offerService}
}

// Export writes the offers matching the filter to w as semicolon separated CSV
// with a header row and returns the exported offers.
func (s *Service) Export(ctx context.Context, filter offer.ListFilter, w io.Writer) ([]*offer.Offer, error) {
	offers, err := s.offers.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing offers: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for _, o := range offers {
		if err := cw.Write(record(o)); err != nil {
			return nil, fmt.Errorf("writing offer %s: %w", o.ID, err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return offers, nil
}

func record(o *offer.Offer) []string {
	classifiedAt := ""
	if o.ClassifiedAt != nil {
		classifiedAt = o.ClassifiedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		o.ID,
		o.URL,
		o.Title,
		string(o.Category),
		deref(o.Manufacturer),
		deref(o.Model),
		deref(o.ClassifierName),
		classifiedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

type count struct {
	name string
	n    int
}

// GenerateSummary counts the offers per manufacturer, most frequent first.
// Classified offers without a manufacturer are counted as failed, the rest
// as pending.
func (s *Service) GenerateSummary(offers []*offer.Offer) string {
	counts := make(map[string]int)

	for _, o := range offers {
		switch {
		case !o.Classified:
			counts["(pending)"]++
		case o.Manufacturer == nil:
			counts["(no match)"]++
		default:
			counts[*o.Manufacturer]++
		}
	}

	sorted := make([]count, 0, len(counts))
	for name, n := range counts {
		sorted = append(sorted, count{name: name, n: n})
	}

	slices.SortFunc(sorted, func(a, b count) int {
		if c := cmp.Compare(b.n, a.n); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	var sb strings.Builder

	for _, c := range sorted {
		fmt.Fprintf(&sb, "* %s | %d\n", c.name, c.n)
	}

	return sb.String()
}
