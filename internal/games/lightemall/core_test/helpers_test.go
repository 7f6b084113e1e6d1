package core_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
)

// buildHex builds a grid from rows of hex link digits (N=1 E=2 S=4 W=8)
// with the source at src.
func buildHex(t *testing.T, rows []string, src core.Coord) *core.Grid {
	t.Helper()
	spec := make([][]core.TileSpec, len(rows))
	for r, line := range rows {
		spec[r] = make([]core.TileSpec, len(line))
		for c, ch := range line {
			v, err := strconv.ParseUint(string(ch), 16, 8)
			if err != nil {
				t.Fatalf("bad hex digit %q at (%d,%d)", ch, r, c)
			}
			spec[r][c] = core.TileSpec{
				Links:  core.Links(v),
				Source: r == src.Row && c == src.Col,
			}
		}
	}
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	g, err := core.Build(len(rows), cols, spec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

// randomGrid builds a rows x cols grid with random stubs and the source
// at (0,0).
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int) *core.Grid {
	t.Helper()
	spec := make([][]core.TileSpec, rows)
	for r := range spec {
		spec[r] = make([]core.TileSpec, cols)
		for c := range spec[r] {
			spec[r][c] = core.TileSpec{
				Links:  core.Links(rng.Intn(16)),
				Source: r == 0 && c == 0,
			}
		}
	}
	g, err := core.Build(rows, cols, spec)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func mustTile(t *testing.T, g *core.Grid, row, col int) *core.Tile {
	t.Helper()
	tile, err := g.TileAt(row, col)
	if err != nil {
		t.Fatalf("TileAt(%d,%d): %v", row, col, err)
	}
	return tile
}

func powerLevels(g *core.Grid) [][]int {
	out := make([][]int, g.Rows())
	for r := range out {
		out[r] = make([]int, g.Cols())
		for c := range out[r] {
			out[r][c] = g.At(core.C(r, c)).Power()
		}
	}
	return out
}
