package gridgraph

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every input-validation error in this
// module. Callers can match any malformed input with errors.Is(err, ErrInvalidArgument).
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("gridgraph: input grid must have at least one row and one column: %w", ErrInvalidArgument)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("gridgraph: all rows must have the same length: %w", ErrInvalidArgument)
	// ErrUnknownTerrain indicates a cell code or glyph outside the terrain table.
	ErrUnknownTerrain = fmt.Errorf("gridgraph: unknown terrain kind: %w", ErrInvalidArgument)
	// ErrBadWeight indicates a passable terrain present in the grid has no
	// positive finite cost in the cost table.
	ErrBadWeight = fmt.Errorf("gridgraph: terrain cost must be positive and finite: %w", ErrInvalidArgument)
	// ErrOutOfRange indicates a node index or rectangle outside the grid.
	ErrOutOfRange = fmt.Errorf("gridgraph: index out of range: %w", ErrInvalidArgument)
)
