// Package core provides the puzzle-state engine for LightEmAll.
// This package is UI-agnostic, single-threaded and deterministic.
package core

import "strings"

// Dir represents one of the four sides of a tile.
type Dir uint8

const (
	DirNorth Dir = iota
	DirEast
	DirSouth
	DirWest
)

// AllDirs lists the directions in the fixed order used by every traversal.
var AllDirs = [4]Dir{DirNorth, DirEast, DirSouth, DirWest}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirNorth:
		return "north"
	case DirEast:
		return "east"
	case DirSouth:
		return "south"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Delta returns the (drow, dcol) offset for one step in this direction.
// North decreases the row (screen coordinates).
func (d Dir) Delta() (drow, dcol int) {
	switch d {
	case DirNorth:
		return -1, 0
	case DirEast:
		return 0, 1
	case DirSouth:
		return 1, 0
	case DirWest:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirEast:
		return DirWest
	case DirSouth:
		return DirNorth
	case DirWest:
		return DirEast
	default:
		return d
	}
}

// Link returns the single-bit link mask for this direction.
func (d Dir) Link() Links {
	if d > DirWest {
		return 0
	}
	return 1 << d
}

// ParseDir converts a string to a Dir.
// Accepts full names and single letters, case-insensitive.
func ParseDir(s string) (Dir, bool) {
	switch strings.ToLower(s) {
	case "north", "n", "up", "top":
		return DirNorth, true
	case "east", "e", "right":
		return DirEast, true
	case "south", "s", "down", "bottom":
		return DirSouth, true
	case "west", "w", "left":
		return DirWest, true
	default:
		return DirNorth, false
	}
}

// Links is a 4-bit mask of a tile's connection stubs.
type Links uint8

const (
	LinkNorth Links = 1 << iota
	LinkEast
	LinkSouth
	LinkWest

	LinkNone Links = 0
	LinkAll        = LinkNorth | LinkEast | LinkSouth | LinkWest
)

// Has reports whether the stub for d is set.
func (l Links) Has(d Dir) bool {
	return l&d.Link() != 0
}

// Count returns the number of stubs set.
func (l Links) Count() int {
	n := 0
	for _, d := range AllDirs {
		if l.Has(d) {
			n++
		}
	}
	return n
}

// String returns the links as a compass string like "NE" or "-" for none.
func (l Links) String() string {
	if l&LinkAll == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, d := range AllDirs {
		if l.Has(d) {
			sb.WriteByte(strings.ToUpper(d.String())[0])
		}
	}
	return sb.String()
}
