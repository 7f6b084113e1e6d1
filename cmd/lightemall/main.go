// lightemall is a terminal wiring puzzle: rotate tiles until power from
// the source reaches every tile of the board.
//
// Usage:
//
//	lightemall                    - Pick a level and play
//	lightemall play               - Same as above
//	lightemall levels             - List available levels
//	lightemall show <level>       - Print a level's wiring and power
//	lightemall validate <path>... - Check level files
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels-dir <dir>    - Extra directory of level files
//	--seed <value>        - RNG seed for reproducible scrambles
//	--fps <rate>          - Tick rate (default: 30)
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination while playing
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightemall/internal/config"
	"github.com/vovakirdan/lightemall/internal/logging"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagSeed       int64
	flagFPS        int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lightemall",
	Short: "LightEmAll - light up every tile of the board",
	Long: `LightEmAll is a wiring puzzle for the terminal.

Every tile carries wire stubs. Rotate tiles until the wires form a path
from the power source to every tile on the board. Power fades by one
step per tile, so tiles too far from the source stay dark.

Available commands:
  play      - Pick a level and play (default)
  levels    - Show all available levels
  show      - Print a level's wiring and power
  validate  - Check level files

Examples:
  lightemall
  lightemall play --level 3
  lightemall show lvl02 --scrambled --seed 7
  lightemall validate ./my-levels`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Extra directory of level files (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	addPlayFlags(playCmd)
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadConfig resolves the config file, applies the difficulty preset and
// the command line overrides.
func loadConfig() (config.LightEmAllConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// stderrLogger returns the logger for non-interactive commands.
func stderrLogger() (*log.Logger, error) {
	return logging.New(os.Stderr, flagLogLevel)
}
