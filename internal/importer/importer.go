package importer

import (
	"io"

	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type Format string

const (
	// FormatFeed is a delimited offer feed with a recognised header.
	FormatFeed Format = "feed"
	// FormatJSONL is one JSON offer item per line, as written by the crawlers.
	FormatJSONL Format = "jsonl"
)

// Formats lists the supported formats in the order they are offered to users.
var Formats = []Format{FormatFeed, FormatJSONL}

type Importer interface {
	Parse(r io.Reader) ([]*offer.Offer, error)
}
