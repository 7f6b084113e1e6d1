package core

import "math/rand"

// Scramble turns every tile clockwise by a random number of quarter turns
// in [minTurns, maxTurns] (taken mod 4). Positions, sources and the board
// layout are untouched. Returns the total number of quarter turns applied.
func Scramble(g *Grid, rng *rand.Rand, minTurns, maxTurns int) int {
	if minTurns < 0 {
		minTurns = 0
	}
	if maxTurns < minTurns {
		maxTurns = minTurns
	}

	total := 0
	for _, t := range g.tiles {
		turns := minTurns + rng.Intn(maxTurns-minTurns+1)
		for i := 0; i < turns%4; i++ {
			t.Rotate(1)
		}
		total += turns % 4
	}
	return total
}
