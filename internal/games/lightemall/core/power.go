package core

import "github.com/zyedidia/generic/mapset"

// PropagationResult summarises one power pass.
type PropagationResult struct {
	Radius  int // Radius the pass ran with
	Visited int // Tiles taken off the work queue; at most rows*cols
	Reached int // Tiles that ended with power > 0
}

// Propagate recomputes every tile's power level from source.
//
// All tiles are reset to 0, the source gets radius and power then spreads
// breadth-first along connected stubs, losing one level per hop. A tile
// at level 0 passes nothing on. Each tile is visited at most once, so the
// pass terminates on wiring that contains loops, and every reached tile
// ends with radius minus its shortest wire distance from the source.
//
// A radius <= 0 leaves every tile, the source included, at 0. The grid is
// expected to hold exactly one source; Propagate does not check this.
func Propagate(g *Grid, source *Tile, radius int) PropagationResult {
	for _, t := range g.tiles {
		t.power = 0
	}

	res := PropagationResult{Radius: radius}
	if radius <= 0 || source == nil || g.At(source.Coord()) != source {
		return res
	}

	source.power = radius
	visited := mapset.New[Coord]()
	visited.Put(source.Coord())
	queue := []*Tile{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		res.Visited++

		if current.power <= 0 {
			continue
		}
		res.Reached++

		for _, d := range AllDirs {
			if !IsConnectedTo(g, current, d) {
				continue
			}
			n, _ := g.NeighborAt(current, d)
			if visited.Has(n.Coord()) {
				continue
			}
			n.power = current.power - 1
			visited.Put(n.Coord())
			queue = append(queue, n)
		}
	}

	return res
}

// PropagateFromSource runs Propagate from the grid's single source.
func PropagateFromSource(g *Grid, radius int) (PropagationResult, error) {
	src, err := g.Source()
	if err != nil {
		return PropagationResult{Radius: radius}, err
	}
	return Propagate(g, src, radius), nil
}

// Distances returns the wire distance from source to every tile reachable
// through connected stubs, ignoring any radius. Tiles missing from the map
// are disconnected from the source.
func Distances(g *Grid, source *Tile) map[Coord]int {
	dist := make(map[Coord]int)
	if source == nil || g.At(source.Coord()) != source {
		return dist
	}

	visited := mapset.New[Coord]()
	visited.Put(source.Coord())
	dist[source.Coord()] = 0
	queue := []*Tile{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range AllDirs {
			if !IsConnectedTo(g, current, d) {
				continue
			}
			n, _ := g.NeighborAt(current, d)
			if visited.Has(n.Coord()) {
				continue
			}
			visited.Put(n.Coord())
			dist[n.Coord()] = dist[current.Coord()] + 1
			queue = append(queue, n)
		}
	}

	return dist
}

// MinRadius returns the smallest radius that powers every tile reachable
// from source in the current wiring: the farthest wire distance plus one.
func MinRadius(g *Grid, source *Tile) int {
	dist := Distances(g, source)
	if len(dist) == 0 {
		return 0
	}
	farthest := 0
	for _, d := range dist {
		if d > farthest {
			farthest = d
		}
	}
	return farthest + 1
}
