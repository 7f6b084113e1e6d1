package core

import (
	"fmt"
	"strings"
)

// glyphs maps a link mask to its box-drawing character.
var glyphs = [16]rune{
	'·', '╹', '╺', '┗',
	'╻', '┃', '┏', '┣',
	'╸', '┛', '━', '┻',
	'┓', '┫', '┳', '╋',
}

// Glyph returns the box-drawing character for a link mask.
func (l Links) Glyph() rune {
	return glyphs[l&LinkAll]
}

// ParseGlyph converts a box-drawing character back to a link mask.
func ParseGlyph(r rune) (Links, bool) {
	for i, g := range glyphs {
		if g == r {
			return Links(i), true
		}
	}
	return LinkNone, false
}

// RenderASCII creates a text representation of the board.
// This is used for debugging, testing (golden outputs), and the show command.
//
// Format:
//   - Header with source position, radius and powered count
//   - Wiring glyphs, one per tile
//   - Power levels, one per tile ('.' unpowered, '+' above 9)
func RenderASCII(g *Grid, radius int) string {
	var sb strings.Builder

	src := "none"
	if s, err := g.Source(); err == nil {
		src = s.Coord().String()
	}
	sb.WriteString(fmt.Sprintf("Source: %s | Radius: %d | Powered: %d/%d\n",
		src, radius, g.PoweredCount(), g.Size()))
	sb.WriteString(strings.Repeat("-", g.Cols()) + "\n")
	sb.WriteString(RenderGrid(g))
	sb.WriteString(strings.Repeat("-", g.Cols()) + "\n")
	sb.WriteString(RenderPower(g))

	return sb.String()
}

// RenderGrid renders the wiring only, one glyph per tile.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(g.tiles[r*g.cols+c].Links().Glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderPower renders power levels, one character per tile.
func RenderPower(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			sb.WriteRune(powerChar(g.tiles[r*g.cols+c].power))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGridCompact renders the wiring as a single line of hex digits
// (for hashing/comparison).
func RenderGridCompact(g *Grid) string {
	var sb strings.Builder
	for _, t := range g.tiles {
		sb.WriteString(fmt.Sprintf("%x", uint8(t.Links())))
	}
	return sb.String()
}

func powerChar(p int) rune {
	switch {
	case p <= 0:
		return '.'
	case p > 9:
		return '+'
	default:
		return rune('0' + p)
	}
}
