package core

// IsConnectedTo reports whether power can flow between t and its
// neighbour in direction d. Both sides must agree: t needs a stub toward
// d and the neighbour needs a stub pointing back. A stub facing the edge
// of the board is never a connection.
func IsConnectedTo(g *Grid, t *Tile, d Dir) bool {
	if !t.Has(d) {
		return false
	}
	n, ok := g.NeighborAt(t, d)
	if !ok {
		return false
	}
	return n.Has(d.Opposite())
}

// Connections returns the directions in which t is connected, in
// AllDirs order.
func Connections(g *Grid, t *Tile) []Dir {
	var dirs []Dir
	for _, d := range AllDirs {
		if IsConnectedTo(g, t, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// LooseEnds counts stubs that do not meet a matching stub, either
// because they face the edge or a neighbour without the opposite stub.
func LooseEnds(g *Grid) int {
	loose := 0
	g.Each(func(t *Tile) {
		for _, d := range AllDirs {
			if t.Has(d) && !IsConnectedTo(g, t, d) {
				loose++
			}
		}
	})
	return loose
}
