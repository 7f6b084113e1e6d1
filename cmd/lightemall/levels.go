package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in levels followed by any found in the levels directory.
A level in the levels directory replaces a built-in level with the same ID.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := stderrLogger()
	if err != nil {
		return err
	}

	lvls, err := levels.LoadSet(cfg.LevelsDir, logger)
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(lvls) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len([]rune(l.Name)))
	}

	fmt.Fprintf(out, "  %-3s  %-*s  %-*s  %-6s  %-6s  %s\n", "#", maxIDLen, "ID", maxNameLen, "Name", "Size", "Radius", "Source")
	fmt.Fprintf(out, "  %-3s  %-*s  %-*s  %-6s  %-6s  %s\n", "-", maxIDLen, "--", maxNameLen, "----", "----", "------", "------")

	for i, l := range lvls {
		radius := "?"
		if r, rErr := l.EffectiveRadius(cfg.Power.Slack); rErr == nil {
			radius = fmt.Sprintf("%d", r)
		}
		origin := "built-in"
		if !l.Builtin {
			origin = l.FilePath
		}
		fmt.Fprintf(out, "  %-3d  %-*s  %-*s  %-6s  %-6s  %s\n",
			i+1, maxIDLen, l.ID, maxNameLen, l.Name,
			fmt.Sprintf("%dx%d", l.Rows, l.Cols), radius, origin)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'lightemall play --level <#>' to play a level.")
	return nil
}
