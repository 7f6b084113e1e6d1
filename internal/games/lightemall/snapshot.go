package lightemall

import "github.com/vovakirdan/lightemall/internal/games/lightemall/core"

// Snapshot contains the complete puzzle state for replay and determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	LevelIndex int
	LevelID    string
	Score      int
	Moves      int
	Radius     int
	CursorRow  int
	CursorCol  int
	Solved     bool
	GameOver   bool

	// Board state, row-major: link mask and power of each tile
	Rows  int
	Cols  int
	Links []int
	Power []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		LevelIndex: g.levelIndex,
		LevelID:    g.level.ID,
		Score:      g.score,
		Moves:      g.moves,
		Radius:     g.radius,
		CursorRow:  g.cursor.Row,
		CursorCol:  g.cursor.Col,
		Solved:     g.solved,
		GameOver:   g.gameOver,
	}
	if g.grid == nil {
		return snap
	}

	snap.Rows = g.grid.Rows()
	snap.Cols = g.grid.Cols()
	snap.Links = make([]int, 0, g.grid.Size())
	snap.Power = make([]int, 0, g.grid.Size())
	g.grid.Each(func(t *core.Tile) {
		snap.Links = append(snap.Links, int(t.Links()))
		snap.Power = append(snap.Power, t.Power())
	})
	return snap
}

// ApplySnapshot restores the board of the snapshot's level. Tiles are
// turned into the recorded orientation rather than overwritten, so a
// snapshot whose links are not a rotation of the level's tiles leaves
// those tiles as they are. The recorded radius is kept; power is
// recomputed, not restored.
func (g *Game) ApplySnapshot(snap Snapshot) {
	// Score drives the difficulty slack used when the level is loaded.
	g.score = snap.Score
	if snap.LevelIndex >= 0 && snap.LevelIndex < len(g.allLevels) && snap.LevelIndex != g.levelIndex {
		g.levelIndex = snap.LevelIndex
		g.gameOver = false
		g.loadCurrentLevel()
	}

	g.tick = snap.Tick
	g.moves = snap.Moves
	g.gameOver = snap.GameOver

	if g.grid == nil || snap.Rows != g.grid.Rows() || snap.Cols != g.grid.Cols() {
		return
	}

	if snap.Radius > 0 {
		g.radius = snap.Radius
	}

	if g.grid.InBounds(snap.CursorRow, snap.CursorCol) {
		g.cursor = core.C(snap.CursorRow, snap.CursorCol)
	}

	i := 0
	g.grid.Each(func(t *core.Tile) {
		if i < len(snap.Links) {
			turnTo(t, core.Links(snap.Links[i]))
		}
		i++
	})

	g.propagate()
	g.solved = g.grid.AllPowered()
}

// turnTo rotates t clockwise until its links equal want, giving up after
// a full turn.
func turnTo(t *core.Tile, want core.Links) {
	for i := 0; i < 4; i++ {
		if t.Links() == want {
			return
		}
		t.Rotate(1)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Moves)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Radius)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorRow)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorCol)  //#nosec G115 -- hash computation
	if snap.Solved {
		h = h*31 + 1
	}
	if snap.GameOver {
		h = h*31 + 2
	}
	for _, l := range snap.Links {
		h = h*31 + uint64(l) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Power {
		h = h*31 + uint64(p) //#nosec G115 -- hash computation
	}
	return h
}
