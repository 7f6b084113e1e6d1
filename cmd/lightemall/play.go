package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lightemall/internal/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall"
	"github.com/vovakirdan/lightemall/internal/logging"
	"github.com/vovakirdan/lightemall/internal/platform/tui"
	"github.com/vovakirdan/lightemall/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a level and play",
	Long: `Start the puzzle. Without --level a level picker is shown first.

Controls:
  Arrows/WASD  - Move the cursor
  Space/E      - Rotate clockwise
  X            - Rotate counter-clockwise
  N/Enter      - Next level (once solved)
  R            - Rescramble the level
  P/Esc        - Pause
  ?            - Show all keys
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Generous radius, light scramble
  normal - Radius one step above the minimum
  hard   - Minimum radius, heavy scramble
  fixed  - No progression, uses the config values as is

Examples:
  lightemall play
  lightemall play --level 4 --difficulty hard
  lightemall play --levels-dir ./my-levels --log-file /tmp/lightemall.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// addPlayFlags registers the play flags on cmd. The root command shares
// them so that a bare invocation plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-based), skipping the picker")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close on exit

	theme, err := tui.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	lightemall.SetConfig(cfg)
	lightemall.SetLogger(logger)

	lvls, err := lightemall.LoadLevels()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	if len(lvls) == 0 {
		return fmt.Errorf("no levels found")
	}

	// Get terminal size early for the level picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	switch {
	case flagLevel > len(lvls) || flagLevel < 0:
		return fmt.Errorf("level %d out of range (1-%d)", flagLevel, len(lvls))
	case flagLevel > 0:
		lightemall.SetStartLevel(flagLevel)
	default:
		selection, selErr := tui.RunLevelSelector(lvls, theme, rc)
		if selErr != nil {
			return selErr
		}
		// User pressed back or quit
		if selection == nil {
			return nil
		}
		lightemall.SetStartLevel(selection.Level)
	}

	game, err := registry.Create(lightemall.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	if g, ok := game.(*lightemall.Game); ok {
		g.UseLevels(lvls)
	}

	logger.Info("starting", "levels", len(lvls), "start", lightemall.GetStartLevel(), "theme", theme.Name)
	if err := tui.Run(game, rc, theme, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
