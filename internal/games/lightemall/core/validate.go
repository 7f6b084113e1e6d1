package core

import (
	"errors"
	"fmt"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateGrid checks that a board is playable:
//   - Exactly one power source
//   - The source has at least one stub
func ValidateGrid(g *Grid) error {
	src, err := g.Source()
	if err != nil {
		code := "NO_SOURCE"
		if errors.Is(err, ErrMultipleSources) {
			code = "MULTIPLE_SOURCES"
		}
		return ValidationError{Code: code, Message: err.Error()}
	}

	if src.Links() == LinkNone {
		return ValidationError{
			Code:    "ISOLATED_SOURCE",
			Message: fmt.Sprintf("source at %s has no stubs", src.Coord()),
		}
	}

	return nil
}

// ValidateSolved checks that the current wiring lights every tile at the
// given radius. Propagation state of g is left as computed.
func ValidateSolved(g *Grid, radius int) error {
	if err := ValidateGrid(g); err != nil {
		return err
	}
	res, _ := PropagateFromSource(g, radius)
	if res.Reached != g.Size() {
		return ValidationError{
			Code: "NOT_SOLVED",
			Message: fmt.Sprintf("%d of %d tiles powered at radius %d",
				res.Reached, g.Size(), radius),
		}
	}
	return nil
}

// GridStats returns statistics about a grid.
type GridStats struct {
	Rows       int
	Cols       int
	TotalTiles int
	Stubs      int // Total stubs over all tiles
	Links      int // Connected tile pairs
	LooseEnds  int // Stubs without a matching stub
	DeadEnds   int // Tiles with exactly one stub
	Powered    int
	PowerRatio float64
}

// ComputeGridStats analyzes a grid and returns statistics.
func ComputeGridStats(g *Grid) GridStats {
	stats := GridStats{
		Rows:       g.rows,
		Cols:       g.cols,
		TotalTiles: g.Size(),
		Powered:    g.PoweredCount(),
	}

	connected := 0
	g.Each(func(t *Tile) {
		n := t.Links().Count()
		stats.Stubs += n
		if n == 1 {
			stats.DeadEnds++
		}
		connected += len(Connections(g, t))
	})
	// Each link is seen from both ends.
	stats.Links = connected / 2
	stats.LooseEnds = stats.Stubs - connected

	if stats.TotalTiles > 0 {
		stats.PowerRatio = float64(stats.Powered) / float64(stats.TotalTiles)
	}

	return stats
}
