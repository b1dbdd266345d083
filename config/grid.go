package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrInvalidGridFile is returned when a grid file has neither or both of
// rows and cells.
var ErrInvalidGridFile = errors.New("config: grid file needs exactly one of rows or cells")

// GridFile is the YAML (and JSON) layout of a grid: either ASCII rows using the
// gridgraph glyphs or integer terrain codes.
//
//	rows:
//	  - "..~~.."
//	  - ".##..."
type GridFile struct {
	Rows  []string `yaml:"rows,omitempty" json:"rows,omitempty"`
	Cells [][]int  `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// Grid builds the grid described by the file.
func (f *GridFile) Grid() (*gridgraph.Grid, error) {
	switch {
	case len(f.Rows) > 0 && len(f.Cells) > 0, len(f.Rows) == 0 && len(f.Cells) == 0:
		return nil, ErrInvalidGridFile
	case len(f.Rows) > 0:
		return gridgraph.ParseRows(f.Rows)
	default:
		return gridgraph.FromInts(f.Cells)
	}
}

// ParseGrid decodes a grid file from YAML.
func ParseGrid(data []byte) (*gridgraph.Grid, error) {
	var f GridFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode grid: %w", err)
	}

	return f.Grid()
}

// LoadGrid reads and decodes the grid file at path.
func LoadGrid(path string) (*gridgraph.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return ParseGrid(data)
}
