package lightemall

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lightemall/internal/config"
	platformcore "github.com/vovakirdan/lightemall/internal/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

// rowLevel is a 1x3 east/west row powered from its west end.
func rowLevel(id string) levels.Level {
	return levels.Level{
		ID:   id,
		Name: "Row " + id,
		Rows: 1,
		Cols: 3,
		Tiles: [][]core.TileSpec{{
			{Links: core.LinkEast, Source: true},
			{Links: core.LinkEast | core.LinkWest},
			{Links: core.LinkWest},
		}},
		Source: core.C(0, 0),
	}
}

// testConfig scrambles every tile by exactly one clockwise turn and
// derives the radius without slack.
func testConfig() config.LightEmAllConfig {
	cfg := config.DefaultLightEmAllConfig()
	cfg.Power.Slack = 0
	cfg.Scramble = config.ScrambleConfig{Enabled: true, MinTurns: 1, MaxTurns: 1}
	cfg.Difficulty.Enabled = false
	return cfg
}

func runtimeConfig(seed int64) platformcore.RuntimeConfig {
	return platformcore.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30, Seed: seed}
}

func newRowGame(t *testing.T, ids ...string) *Game {
	t.Helper()
	lvls := make([]levels.Level, len(ids))
	for i, id := range ids {
		lvls[i] = rowLevel(id)
	}
	g := NewWithConfig(testConfig(), nil)
	g.UseLevels(lvls)
	g.Reset(runtimeConfig(1))
	if g.Grid() == nil {
		t.Fatal("expected a loaded grid")
	}
	return g
}

func step(g *Game, actions ...platformcore.Action) platformcore.StepResult {
	return g.Step(platformcore.FrameOf(actions...))
}

// solveRow undoes the single clockwise scramble turn on each tile.
func solveRow(g *Game) {
	step(g, platformcore.ActionRotateCCW)
	step(g, platformcore.ActionRight)
	step(g, platformcore.ActionRotateCCW)
	step(g, platformcore.ActionRight)
	step(g, platformcore.ActionRotateCCW)
}

func TestResetScramblesLevel(t *testing.T) {
	g := newRowGame(t, "a")

	if g.Radius() != 3 {
		t.Errorf("expected derived radius 3, got %d", g.Radius())
	}
	if g.Cursor() != core.C(0, 0) {
		t.Errorf("expected cursor on the source, got %v", g.Cursor())
	}

	got := core.RenderGridCompact(g.Grid())
	if got != "451" {
		t.Errorf("expected every tile turned once clockwise (451), got %s", got)
	}
	if g.State().Solved {
		t.Error("scrambled level should not start solved")
	}
	if g.Grid().PoweredCount() != 1 {
		t.Errorf("only the source should be lit, got %d", g.Grid().PoweredCount())
	}
}

func TestRotateSolvesLevel(t *testing.T) {
	g := newRowGame(t, "a", "b")

	solveRow(g)

	state := g.State()
	if !state.Solved {
		t.Fatalf("expected level solved, board %s", core.RenderGridCompact(g.Grid()))
	}
	if state.Moves != 3 {
		t.Errorf("expected 3 moves, got %d", state.Moves)
	}
	if state.Score != 1 {
		t.Errorf("expected score 1, got %d", state.Score)
	}

	want := []int{3, 2, 1}
	for c, p := range want {
		if tile := g.Grid().At(core.C(0, c)); tile.Power() != p {
			t.Errorf("tile (0,%d): expected power %d, got %d", c, p, tile.Power())
		}
	}

	// Counter-clockwise turns are ignored once solved; Next moves on.
	step(g, platformcore.ActionRotateCCW)
	if g.State().Moves != 3 {
		t.Errorf("rotation after solving should not count, moves = %d", g.State().Moves)
	}

	g2 := newRowGame(t, "a", "b")
	solveRow(g2)
	step(g2, platformcore.ActionNext)
	if g2.Level().ID != "b" {
		t.Errorf("expected level b after Next, got %s", g2.Level().ID)
	}
	if g2.State().Solved || g2.State().Moves != 0 {
		t.Errorf("new level should start unsolved with no moves: %+v", g2.State())
	}
	if g2.State().Score != 1 {
		t.Errorf("score should carry over, got %d", g2.State().Score)
	}
}

func TestNextIgnoredUntilSolved(t *testing.T) {
	g := newRowGame(t, "a", "b")

	step(g, platformcore.ActionNext)

	if g.Level().ID != "a" {
		t.Errorf("Next should do nothing on an unsolved level, now on %s", g.Level().ID)
	}
}

func TestLastLevelEndsGame(t *testing.T) {
	g := newRowGame(t, "only")

	solveRow(g)
	step(g, platformcore.ActionNext)

	if !g.State().GameOver {
		t.Fatal("expected game over after the last level")
	}

	step(g, platformcore.ActionRestart)
	state := g.State()
	if state.GameOver || state.Score != 0 || state.Solved {
		t.Errorf("restart should begin a fresh session: %+v", state)
	}
}

func TestRestartRescrambles(t *testing.T) {
	g := newRowGame(t, "a")
	step(g, platformcore.ActionRotateCCW)
	if g.State().Moves != 1 {
		t.Fatalf("expected 1 move, got %d", g.State().Moves)
	}

	step(g, platformcore.ActionRestart)

	if g.State().Moves != 0 {
		t.Errorf("restart should reset moves, got %d", g.State().Moves)
	}
	if got := core.RenderGridCompact(g.Grid()); got != "451" {
		t.Errorf("restart should rebuild and rescramble the level, got %s", got)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newRowGame(t, "a")

	step(g, platformcore.ActionUp)
	step(g, platformcore.ActionLeft)
	if g.Cursor() != core.C(0, 0) {
		t.Errorf("cursor left the board: %v", g.Cursor())
	}

	for i := 0; i < 5; i++ {
		step(g, platformcore.ActionRight)
	}
	if g.Cursor() != core.C(0, 2) {
		t.Errorf("expected cursor clamped at (0,2), got %v", g.Cursor())
	}

	step(g, platformcore.ActionDown)
	if g.Cursor() != core.C(0, 2) {
		t.Errorf("cursor left the board: %v", g.Cursor())
	}
}

func TestPauseBlocksRotation(t *testing.T) {
	g := newRowGame(t, "a")

	step(g, platformcore.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := core.RenderGridCompact(g.Grid())
	step(g, platformcore.ActionRotateCW)
	if core.RenderGridCompact(g.Grid()) != before {
		t.Error("rotation should be ignored while paused")
	}

	step(g, platformcore.ActionPause)
	if g.State().Paused {
		t.Error("expected unpaused")
	}
}

func TestFixedRadiusFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Power.Radius = 2
	g := NewWithConfig(cfg, nil)
	g.UseLevels([]levels.Level{rowLevel("a")})
	g.Reset(runtimeConfig(1))

	if g.Radius() != 2 {
		t.Fatalf("expected radius 2, got %d", g.Radius())
	}

	solveRow(g)
	if g.State().Solved {
		t.Error("radius 2 cannot light a row of three")
	}
	if g.Grid().PoweredCount() != 2 {
		t.Errorf("expected 2 lit tiles, got %d", g.Grid().PoweredCount())
	}
}

func TestScrambleDisabledStartsSolved(t *testing.T) {
	cfg := testConfig()
	cfg.Scramble.Enabled = false
	g := NewWithConfig(cfg, nil)
	g.UseLevels([]levels.Level{rowLevel("a")})
	g.Reset(runtimeConfig(1))

	if !g.State().Solved {
		t.Error("unscrambled level should start solved")
	}
}

func TestBuiltinLevelsPlayable(t *testing.T) {
	g := NewWithConfig(config.DefaultLightEmAllConfig(), nil)
	g.Reset(runtimeConfig(42))

	if g.Grid() == nil {
		t.Fatal("expected built-in levels to load")
	}
	if g.Level().ID != "lvl01" {
		t.Errorf("expected to start on lvl01, got %s", g.Level().ID)
	}
	if g.State().Solved {
		t.Error("scrambled built-in level should not start solved")
	}
	if err := core.ValidateGrid(g.Grid()); err != nil {
		t.Errorf("scrambled grid invalid: %v", err)
	}
}

func TestStartLevelSelection(t *testing.T) {
	SetStartLevel(2)
	g := newRowGame(t, "a", "b", "c")

	if g.Level().ID != "b" {
		t.Errorf("expected to start on level b, got %s", g.Level().ID)
	}
	if GetStartLevel() != 0 {
		t.Error("start level should reset after use")
	}
}

func TestUnplayableLevel(t *testing.T) {
	lvl := rowLevel("nosrc")
	lvl.Tiles[0][0].Source = false

	g := NewWithConfig(testConfig(), nil)
	g.UseLevels([]levels.Level{lvl})
	g.Reset(runtimeConfig(1))

	if !g.State().GameOver {
		t.Error("a level without a source should end the session")
	}

	screen := platformcore.NewScreen(60, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Level failed to load") {
		t.Errorf("expected load failure message, got:\n%s", screen.String())
	}

	// Restart cannot recover from a broken level
	step(g, platformcore.ActionRestart)
	if !g.State().GameOver {
		t.Error("restart should not revive a broken level set")
	}
}

func TestUnsolvableLevelIsRejected(t *testing.T) {
	lvl := rowLevel("dark")
	lvl.Tiles[0][2].Links = core.LinkNone

	g := NewWithConfig(testConfig(), nil)
	g.UseLevels([]levels.Level{lvl})
	g.Reset(runtimeConfig(1))

	if g.Grid() != nil {
		t.Error("a level that cannot light every tile should not be played")
	}
	if !g.State().GameOver {
		t.Error("an unsolvable level should end the session")
	}
	if g.loadErr == nil || !strings.Contains(g.loadErr.Error(), "NOT_SOLVED") {
		t.Errorf("expected NOT_SOLVED load error, got %v", g.loadErr)
	}
}

func TestRenderColoursByPower(t *testing.T) {
	g := newRowGame(t, "a")
	solveRow(g)
	g.Resize(60, 12)

	screen := platformcore.NewScreen(60, 12)
	g.Render(screen)

	// 1x3 board of 3-wide cells centered below the 3-line HUD:
	// x = (60-9)/2 = 25, y = 3 + (9-1)/2 = 7.
	testCases := []struct {
		x     int
		glyph rune
		color platformcore.Color
	}{
		{26, '╺', platformcore.ColorSource},
		{29, '━', platformcore.ColorPower3},
		{32, '╸', platformcore.ColorPower1},
	}
	for _, tc := range testCases {
		cell := screen.GetCell(tc.x, 7)
		if cell.Rune != tc.glyph || cell.Color != tc.color {
			t.Errorf("cell (%d,7) = %q/%v, expected %q/%v", tc.x, cell.Rune, cell.Color, tc.glyph, tc.color)
		}
	}

	// Cursor brackets on the last tile
	if screen.Get(31, 7) != '[' || screen.Get(33, 7) != ']' {
		t.Errorf("expected cursor brackets around (0,2), row: %q", screen.Row(7))
	}

	out := screen.String()
	if !strings.Contains(out, "Level 1/1") || !strings.Contains(out, "Lit: 3/3") {
		t.Errorf("HUD missing level or lit count:\n%s", out)
	}
	if !strings.Contains(out, "Solved in 3 moves") {
		t.Errorf("expected solved banner:\n%s", out)
	}
}

func TestRenderUnpoweredUsesNeutralColour(t *testing.T) {
	g := newRowGame(t, "a")

	screen := platformcore.NewScreen(40, 12)
	g.Render(screen)

	// (0,1) is scrambled to north/south and dark
	cell := screen.GetCell(19, 7)
	if cell.Rune != '┃' || cell.Color != platformcore.ColorWire {
		t.Errorf("expected dark ┃ in wire colour, got %q/%v", cell.Rune, cell.Color)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newRowGame(t, "a")
	g.Resize(6, 5)

	before := core.RenderGridCompact(g.Grid())
	step(g, platformcore.ActionRotateCW)
	if core.RenderGridCompact(g.Grid()) != before {
		t.Error("input should be ignored while the screen is too small")
	}

	g.Resize(40, 12)
	step(g, platformcore.ActionRotateCW)
	if core.RenderGridCompact(g.Grid()) == before {
		t.Error("input should resume after resizing back")
	}
	if g.State().Moves != 1 {
		t.Errorf("resize should keep progress, moves = %d", g.State().Moves)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []platformcore.Action{
		platformcore.ActionRotateCW, platformcore.ActionRight, platformcore.ActionRotateCW,
		platformcore.ActionDown, platformcore.ActionRotateCCW, platformcore.ActionRight,
		platformcore.ActionRotateCW, platformcore.ActionLeft, platformcore.ActionRotateCW,
	}

	run := func() Snapshot {
		g := NewWithConfig(config.DefaultLightEmAllConfig(), nil)
		g.Reset(runtimeConfig(12345))
		for _, a := range inputs {
			step(g, a)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Moves != snap2.Moves {
		t.Errorf("Determinism failed: moves differ. Run1=%d, Run2=%d", snap1.Moves, snap2.Moves)
	}
}

func TestApplySnapshot(t *testing.T) {
	g1 := newRowGame(t, "a", "b")
	step(g1, platformcore.ActionRotateCCW)
	step(g1, platformcore.ActionRight)
	snap := g1.Snapshot()

	g2 := NewWithConfig(testConfig(), nil)
	g2.UseLevels([]levels.Level{rowLevel("a"), rowLevel("b")})
	g2.Reset(runtimeConfig(99))
	g2.ApplySnapshot(snap)

	restored := g2.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Errorf("snapshot not restored:\n got %+v\nwant %+v", restored, snap)
	}
	if g2.Cursor() != core.C(0, 1) {
		t.Errorf("cursor not restored, got %v", g2.Cursor())
	}
}

func TestApplySnapshotKeepsDifficultyRadius(t *testing.T) {
	cfg := testConfig()
	cfg.Power.Slack = 4
	cfg.Difficulty = config.DifficultyConfig{Enabled: true, InitialLevel: 0, MaxAt: 1}
	lvls := []levels.Level{rowLevel("a"), rowLevel("b")}

	g1 := NewWithConfig(cfg, nil)
	g1.UseLevels(lvls)
	g1.Reset(runtimeConfig(1))
	if g1.Radius() != 7 {
		t.Fatalf("expected radius 7 with full slack, got %d", g1.Radius())
	}
	solveRow(g1)
	step(g1, platformcore.ActionNext)
	if g1.Level().ID != "b" || g1.Radius() != 3 {
		t.Fatalf("expected level b at radius 3, got %s at %d", g1.Level().ID, g1.Radius())
	}
	snap := g1.Snapshot()

	g2 := NewWithConfig(cfg, nil)
	g2.UseLevels(lvls)
	g2.Reset(runtimeConfig(99))
	g2.ApplySnapshot(snap)

	if g2.Radius() != snap.Radius {
		t.Errorf("expected radius %d after restore, got %d", snap.Radius, g2.Radius())
	}
	restored := g2.Snapshot()
	if restored.Hash() != snap.Hash() {
		t.Errorf("snapshot not restored:\n got %+v\nwant %+v", restored, snap)
	}
}
