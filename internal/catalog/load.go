package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

//go:embed catalog.toml
var defaultCatalog []byte

// catalogFile is the on-disk layout. Manufacturers are an array of tables so
// that their order survives decoding.
type catalogFile struct {
	Manufacturers []struct {
		Name    string              `toml:"name"`
		Aliases []string            `toml:"aliases"`
		Models  modelTable `toml:"models"`
	} `toml:"manufacturer"`
}

// modelTable is a [manufacturer.models] table. It keeps the order its
// categories are listed in, which a plain map would lose.
type modelTable struct {
	order  []string
	models map[string][]string
}

func (t *modelTable) UnmarshalTOML(data []byte) error {
	if err := toml.Unmarshal(data, &t.models); err != nil {
		return err
	}

	var p unstable.Parser
	p.Reset(data)

	for p.NextExpression() {
		expr := p.Expression()
		if expr.Kind != unstable.KeyValue {
			continue
		}

		key := expr.Key()
		if key.Next() {
			t.order = append(t.order, string(key.Node().Data))
		}
	}

	return p.Error()
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// LoadFile reads a catalog from a TOML file. An empty path means the bundled catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a TOML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile

	dec := toml.NewDecoder(r).DisallowUnknownFields().EnableUnmarshalerInterface()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	manufacturers := make([]Manufacturer, 0, len(file.Manufacturers))

	for _, m := range file.Manufacturers {
		models := make(map[Category][]string, len(m.Models.models))
		for category, names := range m.Models.models {
			models[Category(category)] = names
		}

		order := make([]Category, 0, len(m.Models.order))
		for _, category := range m.Models.order {
			order = append(order, Category(category))
		}

		manufacturers = append(manufacturers, Manufacturer{
			Name:    m.Name,
			Aliases: m.Aliases,
			Models:  models,
			order:   order,
		})
	}

	c, err := New(manufacturers)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	return c, nil
}
