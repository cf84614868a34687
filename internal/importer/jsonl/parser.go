package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

const maxLineSize = 1 << 20

// item is one crawled offer page. Fields the classifier does not use are ignored.
type item struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// Parser reads newline-delimited JSON offer items.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]*offer.Offer, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var offers []*offer.Offer

	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		var it item
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		o, err := toOffer(it)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		offers = append(offers, o)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}

	return offers, nil
}

func toOffer(it item) (*offer.Offer, error) {
	title := strings.TrimSpace(it.Title)
	if title == "" {
		return nil, fmt.Errorf("missing title")
	}

	url := strings.TrimSpace(it.URL)

	id := strings.TrimSpace(it.ID)
	if id == "" && url != "" {
		id = offer.IDFromURL(url)
	}

	if id == "" {
		return nil, fmt.Errorf("missing id and url")
	}

	var category catalog.Category

	if it.Category != "" {
		c, err := catalog.ParseCategory(it.Category)
		if err != nil {
			slog.Debug("ignoring item category", "category", it.Category, "error", err)
		} else {
			category = c
		}
	}

	return &offer.Offer{
		ID:       id,
		URL:      url,
		Title:    title,
		Category: category,
	}, nil
}
