package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightemall/internal/config"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

var (
	flagShowRadius    int
	flagShowScrambled bool
	flagShowRotate    []string
)

var showCmd = &cobra.Command{
	Use:   "show <level-id|file>",
	Short: "Print a level's wiring and power",
	Long: `Builds a level, optionally scrambles and rotates tiles, propagates power
from the source and prints the wiring followed by the power of every tile.

Rotations are given as row,col for a clockwise quarter turn or
row,col,ccw for a counter-clockwise one, and are applied in order.

Examples:
  lightemall show lvl01
  lightemall show lvl03 --radius 2
  lightemall show lvl02 --scrambled --seed 42
  lightemall show ./my-level.yaml --rotate 0,1 --rotate 1,1,ccw`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagShowRadius, "radius", 0, "Propagation radius (0 = from config or level)")
	showCmd.Flags().BoolVar(&flagShowScrambled, "scrambled", false, "Scramble the level first (uses --seed)")
	showCmd.Flags().StringArrayVar(&flagShowRotate, "rotate", nil, "Rotate a tile: row,col[,ccw] (repeatable)")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := stderrLogger()
	if err != nil {
		return err
	}

	lvl, err := resolveLevel(args[0], cfg, logger)
	if err != nil {
		return err
	}
	grid, err := lvl.Build()
	if err != nil {
		return err
	}
	source, err := grid.Source()
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}

	radius, err := showRadius(lvl, cfg)
	if err != nil {
		return err
	}

	if flagShowScrambled {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		turns := core.Scramble(grid, rand.New(rand.NewSource(seed)), cfg.Scramble.MinTurns, cfg.Scramble.MaxTurns)
		logger.Debug("scrambled", "seed", seed, "turns", turns)
	}

	for _, spec := range flagShowRotate {
		row, col, dir, perr := parseRotation(spec)
		if perr != nil {
			return perr
		}
		tile, terr := grid.TileAt(row, col)
		if terr != nil {
			return fmt.Errorf("rotate %q: %w", spec, terr)
		}
		tile.Rotate(dir)
	}

	res := core.Propagate(grid, source, radius)
	stats := core.ComputeGridStats(grid)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", lvl.ID, lvl.Name)
	fmt.Fprint(out, core.RenderASCII(grid, radius))
	fmt.Fprintf(out, "Reached: %d | Links: %d | Loose ends: %d | Dead ends: %d | Solved: %s\n",
		res.Reached, stats.Links, stats.LooseEnds, stats.DeadEnds, yesNo(grid.AllPowered()))
	return nil
}

// showRadius picks the radius: flag, then config, then the level.
func showRadius(lvl levels.Level, cfg config.LightEmAllConfig) (int, error) {
	switch {
	case flagShowRadius > 0:
		return flagShowRadius, nil
	case cfg.Power.Radius > 0:
		return cfg.Power.Radius, nil
	}
	return lvl.EffectiveRadius(cfg.Power.Slack)
}

// resolveLevel treats arg as a level file when one exists at that path and
// as a level ID otherwise.
func resolveLevel(arg string, cfg config.LightEmAllConfig, logger *log.Logger) (levels.Level, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return loadLevelFile(arg)
	}

	lvls, err := levels.LoadSet(cfg.LevelsDir, logger)
	if err != nil {
		return levels.Level{}, fmt.Errorf("loading levels: %w", err)
	}
	lvl, err := lvls.ByID(arg)
	if err != nil {
		return levels.Level{}, fmt.Errorf("%w (known: %s)", err, strings.Join(lvls.IDs(), ", "))
	}
	return lvl, nil
}

// loadLevelFile parses a single level file from disk.
func loadLevelFile(path string) (levels.Level, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	lvl, err := levels.NewLoader(dir).LoadFile(base)
	if err != nil {
		return levels.Level{}, err
	}
	lvl.FilePath = path
	return lvl, nil
}

var errBadRotation = errors.New("rotation must be row,col or row,col,ccw")

// parseRotation parses "row,col" (clockwise) or "row,col,cw|ccw".
func parseRotation(s string) (row, col, dir int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%q: %w", s, errBadRotation)
	}

	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, 0, fmt.Errorf("%q: bad row: %w", s, errBadRotation)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, 0, fmt.Errorf("%q: bad column: %w", s, errBadRotation)
	}

	dir = 1
	if len(parts) == 3 {
		switch strings.ToLower(strings.TrimSpace(parts[2])) {
		case "cw":
		case "ccw":
			dir = -1
		default:
			return 0, 0, 0, fmt.Errorf("%q: bad direction: %w", s, errBadRotation)
		}
	}
	return row, col, dir, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
