package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
)

var ErrNotFound = errors.New("offer not found")

// UnclassifiedOffer is the unit of work handed to a classifier.
// Category narrows the search to models of that category; empty means no hint.
type UnclassifiedOffer struct {
	ID       string
	Title    string
	Category catalog.Category
}

// ClassificationResult is the outcome for one offer. Manufacturer and Model are
// either both empty (no confident match) or a pair taken verbatim from the catalog.
// Category is the category of the matched model, or the fallback guess when
// nothing matched.
type ClassificationResult struct {
	Category     catalog.Category
	Manufacturer string
	Model        string
}

// Unknown is the result for a title that could not be matched.
func Unknown() ClassificationResult {
	return ClassificationResult{}
}

func (r ClassificationResult) IsUnknown() bool {
	return r.Manufacturer == "" || r.Model == ""
}

// Offer is a stored sale listing together with its classification state.
type Offer struct {
	ID             string
	URL            string
	Title          string
	Category       catalog.Category
	Classified     bool
	Manufacturer   *string
	Model          *string
	ClassifierName *string
	CreatedAt      time.Time
	ClassifiedAt   *time.Time
}

// IDFromURL derives the stable offer id used for listings scraped from url.
func IDFromURL(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String()
}
