package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/aerooffers/internal/importer/feed"
	"github.com/MrJamesThe3rd/aerooffers/internal/importer/jsonl"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type Service struct {
	feedImporter  Importer
	jsonlImporter Importer
}

func NewService() *Service {
	return &Service{
		feedImporter:  feed.NewParser(),
		jsonlImporter: jsonl.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]*offer.Offer, error) {
	var importer Importer

	switch format {
	case FormatFeed, "":
		importer = s.feedImporter
	case FormatJSONL:
		importer = s.jsonlImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
