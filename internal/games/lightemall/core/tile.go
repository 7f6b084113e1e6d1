package core

import "fmt"

// Tile is a single cell of the board.
//
// Position and the source flag are fixed at construction. The four stubs
// change only through Rotate and the power level only through Propagate.
type Tile struct {
	row    int
	col    int
	north  bool
	east   bool
	south  bool
	west   bool
	source bool
	power  int
}

// NewTile creates a tile at (row, col) with the given stubs.
func NewTile(row, col int, links Links, source bool) *Tile {
	t := &Tile{
		row:    row,
		col:    col,
		source: source,
	}
	t.setLinks(links)
	return t
}

// Row returns the tile's row.
func (t *Tile) Row() int { return t.row }

// Col returns the tile's column.
func (t *Tile) Col() int { return t.col }

// Coord returns the tile's position.
func (t *Tile) Coord() Coord { return C(t.row, t.col) }

// IsSource reports whether the power source sits on this tile.
func (t *Tile) IsSource() bool { return t.source }

// Power returns the current power level. Zero means unpowered.
func (t *Tile) Power() int { return t.power }

// Powered reports whether the tile received power in the last pass.
func (t *Tile) Powered() bool { return t.power > 0 }

// North reports whether the tile has a stub toward its north neighbour.
func (t *Tile) North() bool { return t.north }

// East reports whether the tile has a stub toward its east neighbour.
func (t *Tile) East() bool { return t.east }

// South reports whether the tile has a stub toward its south neighbour.
func (t *Tile) South() bool { return t.south }

// West reports whether the tile has a stub toward its west neighbour.
func (t *Tile) West() bool { return t.west }

// Has reports whether the tile has a stub pointing in d.
func (t *Tile) Has(d Dir) bool {
	switch d {
	case DirNorth:
		return t.north
	case DirEast:
		return t.east
	case DirSouth:
		return t.south
	case DirWest:
		return t.west
	default:
		return false
	}
}

// Links returns the tile's stubs as a mask.
func (t *Tile) Links() Links {
	var l Links
	for _, d := range AllDirs {
		if t.Has(d) {
			l |= d.Link()
		}
	}
	return l
}

func (t *Tile) setLinks(l Links) {
	t.north = l.Has(DirNorth)
	t.east = l.Has(DirEast)
	t.south = l.Has(DirSouth)
	t.west = l.Has(DirWest)
}

// SameState reports whether two tiles agree on position, stubs,
// source flag and power level.
func (t *Tile) SameState(other *Tile) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.row == other.row && t.col == other.col &&
		t.north == other.north && t.east == other.east &&
		t.south == other.south && t.west == other.west &&
		t.source == other.source && t.power == other.power
}

// Clone returns a copy of the tile.
func (t *Tile) Clone() *Tile {
	c := *t
	return &c
}

// String returns a compact description such as "(1,2)[NE]*3".
func (t *Tile) String() string {
	mark := ""
	if t.source {
		mark = "*"
	}
	return fmt.Sprintf("%s[%s]%s%d", t.Coord(), t.Links(), mark, t.power)
}
