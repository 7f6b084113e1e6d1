// Package lightemall provides the LightEmAll wiring puzzle for the platform.
package lightemall

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightemall/internal/config"
	platformcore "github.com/vovakirdan/lightemall/internal/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
	"github.com/vovakirdan/lightemall/internal/logging"
	"github.com/vovakirdan/lightemall/internal/registry"
)

// GameID is the registry identifier.
const GameID = "lightemall"

// scrambleAttempts bounds how often a level is rescrambled when the
// random rotations happen to leave it solved.
const scrambleAttempts = 8

// Game implements the LightEmAll puzzle.
type Game struct {
	rng        *rand.Rand
	cfg        config.LightEmAllConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger

	// Level set
	allLevels  []levels.Level
	levelIndex int
	level      levels.Level
	loadErr    error

	// Board state
	grid   *core.Grid
	source *core.Tile
	radius int
	cursor core.Coord

	// Status
	tick     uint64
	score    int // levels solved this session
	moves    int // rotations on the current level
	solved   bool
	gameOver bool
	paused   bool
	tooSmall bool

	// Screen dimensions
	screenW int
	screenH int

	// Rendering config
	cellW     int
	cellH     int
	hudHeight int
	board     platformcore.Rect
}

// Package-level variables for configuration
var (
	selectedStartLevel int
	gameConfig         = config.DefaultLightEmAllConfig()
	gameLogger         = logging.Discard()
)

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.LightEmAllConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	gameLogger = l
}

// LoadLevels returns the built-in levels plus any from the configured
// levels directory, in play order.
func LoadLevels() ([]levels.Level, error) {
	return levels.LoadSet(gameConfig.LevelsDir, gameLogger)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new LightEmAll game using the package configuration.
func New() *Game {
	return NewWithConfig(gameConfig, gameLogger)
}

// NewWithConfig creates a game with an explicit configuration and logger.
func NewWithConfig(cfg config.LightEmAllConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     logger,
		hudHeight:  3,
	}
}

// UseLevels replaces the level set. Takes effect on the next Reset.
func (g *Game) UseLevels(lvls []levels.Level) {
	g.allLevels = lvls
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "LightEmAll"
}

// Reset initializes or restarts the game from the first (or selected) level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.loadErr = nil
	g.grid = nil

	if g.allLevels == nil {
		lvls, err := levels.LoadSet(g.cfg.LevelsDir, g.logger)
		if err != nil {
			g.logger.Error("loading levels", "error", err)
			g.loadErr = err
			g.gameOver = true
			return
		}
		g.allLevels = lvls
	}
	if len(g.allLevels) == 0 {
		g.gameOver = true
		return
	}

	// Apply selected start level
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.allLevels) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadCurrentLevel()
}

// Resize adapts the layout to a new screen size without losing progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid != nil {
		g.calculateLayout()
	}
}

// loadCurrentLevel builds, scrambles and powers the level at levelIndex.
func (g *Game) loadCurrentLevel() {
	if g.levelIndex >= len(g.allLevels) {
		g.gameOver = true
		return
	}

	g.level = g.allLevels[g.levelIndex]
	g.moves = 0
	g.solved = false

	if err := g.level.Validate(); err != nil {
		g.failLevel(err)
		return
	}
	grid, err := g.level.Build()
	if err != nil {
		g.failLevel(err)
		return
	}
	source, err := grid.Source()
	if err != nil {
		g.failLevel(err)
		return
	}

	radius := g.cfg.Power.Radius
	if radius <= 0 {
		slack := g.difficulty.Slack(g.cfg.Power.Slack, g.score)
		if radius, err = g.level.EffectiveRadius(slack); err != nil {
			g.failLevel(err)
			return
		}
	}

	g.grid = grid
	g.source = source
	g.radius = radius
	g.cursor = source.Coord()

	turns := g.scramble()
	g.propagate()
	g.solved = g.grid.AllPowered()
	g.calculateLayout()

	g.logger.Info("level loaded",
		"id", g.level.ID,
		"size", g.level.Rows*g.level.Cols,
		"radius", g.radius,
		"turns", turns)
}

// failLevel records a level that cannot be played and ends the session.
func (g *Game) failLevel(err error) {
	g.logger.Error("level unplayable", "id", g.level.ID, "error", err)
	g.loadErr = err
	g.grid = nil
	g.gameOver = true
}

// scramble rotates every tile by a random number of quarter turns, retrying
// while the result is still fully lit. Returns the turns applied.
func (g *Game) scramble() int {
	if !g.cfg.Scramble.Enabled {
		return 0
	}
	lo, hi := g.difficulty.Turns(g.cfg.Scramble.MinTurns, g.cfg.Scramble.MaxTurns, g.score)

	total := 0
	for attempt := 0; attempt < scrambleAttempts; attempt++ {
		total += core.Scramble(g.grid, g.rng, lo, hi)
		g.propagate()
		if !g.grid.AllPowered() {
			break
		}
		g.logger.Debug("scramble left level solved, retrying", "id", g.level.ID, "attempt", attempt+1)
	}
	return total
}

// propagate recomputes power from the level source.
func (g *Game) propagate() core.PropagationResult {
	return core.Propagate(g.grid, g.source, g.radius)
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	changed := !input.Empty()

	// Handle restart after the last level
	if g.gameOver {
		if input.Has(platformcore.ActionRestart) && len(g.allLevels) > 0 && g.loadErr == nil {
			g.gameOver = false
			g.score = 0
			g.levelIndex = 0
			g.loadCurrentLevel()
		}
		return platformcore.StepResult{State: g.State(), Changed: changed}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.grid == nil {
		return platformcore.StepResult{State: g.State(), Changed: changed}
	}

	g.moveCursor(input)

	switch {
	case input.Has(platformcore.ActionRestart):
		g.logger.Debug("level rescrambled", "id", g.level.ID, "moves", g.moves)
		g.loadCurrentLevel()
	case g.solved:
		if input.Has(platformcore.ActionNext) || input.Has(platformcore.ActionRotateCW) {
			g.nextLevel()
		}
	case input.Has(platformcore.ActionRotateCW):
		g.rotate(1)
	case input.Has(platformcore.ActionRotateCCW):
		g.rotate(-1)
	}

	return platformcore.StepResult{State: g.State(), Changed: changed}
}

// moveCursor applies directional input, clamped to the board.
func (g *Game) moveCursor(input platformcore.InputFrame) {
	moves := []struct {
		action platformcore.Action
		dir    core.Dir
	}{
		{platformcore.ActionUp, core.DirNorth},
		{platformcore.ActionRight, core.DirEast},
		{platformcore.ActionDown, core.DirSouth},
		{platformcore.ActionLeft, core.DirWest},
	}
	for _, m := range moves {
		if !input.Has(m.action) {
			continue
		}
		next := g.cursor.Step(m.dir)
		if g.grid.InBounds(next.Row, next.Col) {
			g.cursor = next
		}
	}
}

// rotate turns the tile under the cursor and repowers the board.
func (g *Game) rotate(dir int) {
	tile := g.grid.At(g.cursor)
	if tile == nil {
		return
	}
	tile.Rotate(dir)
	g.moves++

	res := g.propagate()
	g.logger.Debug("tile rotated",
		"tile", g.cursor.String(),
		"dir", dir,
		"reached", res.Reached)

	if g.grid.AllPowered() {
		g.solved = true
		g.score++
		g.logger.Info("level solved", "id", g.level.ID, "moves", g.moves)
	}
}

// nextLevel advances past a solved level.
func (g *Game) nextLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.allLevels) {
		g.gameOver = true
		g.logger.Info("all levels solved", "score", g.score)
		return
	}
	g.loadCurrentLevel()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		Moves:    g.moves,
		Solved:   g.solved,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Grid exposes the current board, nil when no level is loaded.
func (g *Game) Grid() *core.Grid {
	return g.grid
}

// Cursor returns the tile under the cursor.
func (g *Game) Cursor() core.Coord {
	return g.cursor
}

// Radius returns the propagation radius of the current level.
func (g *Game) Radius() int {
	return g.radius
}

// Level returns the current level definition.
func (g *Game) Level() levels.Level {
	return g.level
}
