package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidSpec is returned when a board specification is malformed.
	ErrInvalidSpec = errors.New("invalid board spec")
	// ErrNoSource is returned when a board has no power source.
	ErrNoSource = errors.New("board has no power source")
	// ErrMultipleSources is returned when a board has more than one power source.
	ErrMultipleSources = errors.New("board has more than one power source")
)

// OutOfBoundsError reports a lookup outside [0, rows) x [0, cols).
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("tile (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// InvalidSpecError describes why a board specification was rejected.
type InvalidSpecError struct {
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return "invalid board spec: " + e.Reason
}

func (e *InvalidSpecError) Unwrap() error { return ErrInvalidSpec }

func invalidSpec(format string, args ...any) error {
	return &InvalidSpecError{Reason: fmt.Sprintf(format, args...)}
}

// TileSpec is the caller-supplied description of one cell.
type TileSpec struct {
	Links  Links
	Source bool
}

// Grid owns every tile of the board.
// Tiles are stored in row-major order: index = row*cols + col.
// Neighbours are derived from coordinates; tiles never point at each other.
type Grid struct {
	rows  int
	cols  int
	tiles []*Tile
}

// Build creates a rows x cols grid from spec, which must hold exactly
// rows slices of cols entries each. Either every tile is built or an
// error wrapping ErrInvalidSpec is returned.
func Build(rows, cols int, spec [][]TileSpec) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, invalidSpec("dimensions must be positive, got %dx%d", rows, cols)
	}
	if len(spec) != rows {
		return nil, invalidSpec("expected %d rows, got %d", rows, len(spec))
	}
	for r, line := range spec {
		if len(line) != cols {
			return nil, invalidSpec("row %d: expected %d columns, got %d", r, cols, len(line))
		}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		tiles: make([]*Tile, 0, rows*cols),
	}
	for r, line := range spec {
		for c, ts := range line {
			g.tiles = append(g.tiles, NewTile(r, c, ts.Links, ts.Source))
		}
	}
	return g, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// hard-coded boards.
func MustBuild(rows, cols int, spec [][]TileSpec) *Grid {
	g, err := Build(rows, cols, spec)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the total number of tiles.
func (g *Grid) Size() int { return len(g.tiles) }

// InBounds returns true if (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// TileAt returns the tile at (row, col), or an error wrapping
// ErrOutOfBounds. Coordinates are never clamped.
func (g *Grid) TileAt(row, col int) (*Tile, error) {
	if !g.InBounds(row, col) {
		return nil, &OutOfBoundsError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	return g.tiles[row*g.cols+col], nil
}

// At returns the tile at c, or nil when c is outside the grid.
func (g *Grid) At(c Coord) *Tile {
	if !g.InBounds(c.Row, c.Col) {
		return nil
	}
	return g.tiles[c.Row*g.cols+c.Col]
}

// NeighborAt returns the tile adjacent to t in direction d.
// The second result is false when that position is outside the grid.
func (g *Grid) NeighborAt(t *Tile, d Dir) (*Tile, bool) {
	n := g.At(t.Coord().Step(d))
	return n, n != nil
}

// Tiles returns all tiles in row-major order.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Each calls fn for every tile in row-major order.
func (g *Grid) Each(fn func(t *Tile)) {
	for _, t := range g.tiles {
		fn(t)
	}
}

// Sources returns every tile carrying a power source.
func (g *Grid) Sources() []*Tile {
	var out []*Tile
	for _, t := range g.tiles {
		if t.source {
			out = append(out, t)
		}
	}
	return out
}

// Source returns the board's single power source.
func (g *Grid) Source() (*Tile, error) {
	sources := g.Sources()
	switch len(sources) {
	case 0:
		return nil, ErrNoSource
	case 1:
		return sources[0], nil
	default:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleSources, len(sources))
	}
}

// PoweredCount returns the number of tiles with power > 0.
func (g *Grid) PoweredCount() int {
	count := 0
	for _, t := range g.tiles {
		if t.power > 0 {
			count++
		}
	}
	return count
}

// AllPowered returns true if every tile received power.
func (g *Grid) AllPowered() bool {
	return g.PoweredCount() == len(g.tiles)
}

// Spec returns the current stubs and source flags as a TileSpec matrix
// that Build accepts.
func (g *Grid) Spec() [][]TileSpec {
	spec := make([][]TileSpec, g.rows)
	for r := range spec {
		spec[r] = make([]TileSpec, g.cols)
		for c := range spec[r] {
			t := g.tiles[r*g.cols+c]
			spec[r][c] = TileSpec{Links: t.Links(), Source: t.source}
		}
	}
	return spec
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]*Tile, len(g.tiles))
	for i, t := range g.tiles {
		tiles[i] = t.Clone()
	}
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		tiles: tiles,
	}
}

// Equal returns true if two grids have the same dimensions and every
// pair of tiles is SameState-equal.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.tiles {
		if !t.SameState(other.tiles[i]) {
			return false
		}
	}
	return true
}
