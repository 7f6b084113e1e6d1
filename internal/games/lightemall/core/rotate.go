package core

// RotateLinks returns l turned a quarter turn. dir > 0 turns clockwise,
// dir < 0 counter-clockwise and dir == 0 leaves l unchanged.
// Only the sign of dir matters.
func RotateLinks(l Links, dir int) Links {
	l &= LinkAll
	switch {
	case dir > 0:
		// north<-west, east<-north, south<-east, west<-south
		return ((l << 1) | (l >> 3)) & LinkAll
	case dir < 0:
		return ((l >> 1) | (l << 3)) & LinkAll
	default:
		return l
	}
}

// Rotate turns the tile a quarter turn: clockwise for dir > 0,
// counter-clockwise for dir < 0, and not at all for dir == 0.
// Only the four stubs change.
func (t *Tile) Rotate(dir int) {
	t.setLinks(RotateLinks(t.Links(), dir))
}
