package feed

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	enc "github.com/MrJamesThe3rd/aerooffers/internal/encoding"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

var ErrNoProfile = errors.New("no matching feed format")

// Parser reads offer feeds exported by scrapers or partner sites. The header
// row is located by matching it against known profiles; rows before it are
// ignored.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]*offer.Offer, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	br := bufio.NewReader(utf8r)

	reader := csv.NewReader(br)
	reader.Comma = detectComma(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("%w: expected columns for aerooffers, de, or spider", ErrNoProfile)
	}

	slog.Debug("feed detected", "profile", profile.Name, "charset", charset, "rows", len(rows)-headerIdx-1)

	return parseRows(profile, cols, rows[headerIdx+1:], headerIdx+1)
}

// detectComma picks ';' or ',' by counting both in the first line.
func detectComma(br *bufio.Reader) rune {
	buf, _ := br.Peek(4096)

	if i := bytes.IndexByte(buf, '\n'); i >= 0 {
		buf = buf[:i]
	}

	if bytes.Count(buf, []byte{','}) > bytes.Count(buf, []byte{';'}) {
		return ','
	}

	return ';'
}

// colIndex maps lowercased column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if _, seen := cols[name]; name != "" && !seen {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts offers from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]*offer.Offer, error) {
	var offers []*offer.Offer

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based

		if isBlank(row) {
			continue
		}

		title := cellValue(row, lookup(cols, p.TitleCol))
		if title == "" {
			return nil, fmt.Errorf("row %d: missing title", rowNum)
		}

		url := cellValue(row, lookup(cols, p.URLCol))

		id := cellValue(row, lookup(cols, p.IDCol))
		if id == "" && url != "" {
			id = offer.IDFromURL(url)
		}

		if id == "" {
			return nil, fmt.Errorf("row %d: missing id", rowNum)
		}

		offers = append(offers, &offer.Offer{
			ID:       id,
			URL:      url,
			Title:    title,
			Category: parseCategory(cellValue(row, lookup(cols, p.CategoryCol))),
		})
	}

	return offers, nil
}

// parseCategory maps a feed category to the catalog. Unknown values leave the
// offer without a category hint.
func parseCategory(s string) catalog.Category {
	if s == "" {
		return ""
	}

	c, err := catalog.ParseCategory(s)
	if err != nil {
		slog.Debug("ignoring feed category", "category", s, "error", err)
		return ""
	}

	return c
}

func lookup(cols colIndex, name string) int {
	if name == "" {
		return -1
	}

	idx, ok := cols[name]
	if !ok {
		return -1
	}

	return idx
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
