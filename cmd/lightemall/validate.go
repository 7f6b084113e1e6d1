package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels/formats"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Check level files",
	Long: `Checks that each level file parses against the level schema, has exactly
one source with at least one stub, and that its solved wiring lights every
tile at the level's radius. Directories are searched recursively.

Examples:
  lightemall validate ./my-levels
  lightemall validate a.yaml b.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger()
	if err != nil {
		return err
	}

	files, err := collectLevelFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no level files found")
	}

	out := cmd.OutOrStdout()
	seen := make(map[string]string, len(files))
	failed := 0
	for _, path := range files {
		lvl, err := checkLevelFile(path, logger)
		if err == nil {
			if prev, dup := seen[lvl.ID]; dup {
				err = fmt.Errorf("duplicate id %s (also in %s)", lvl.ID, prev)
			} else {
				seen[lvl.ID] = path
			}
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(out, "ok    %s (%s, %dx%d)\n", path, lvl.ID, lvl.Rows, lvl.Cols)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files failed validation", failed, len(files))
	}
	return nil
}

// collectLevelFiles expands directories into the level files they contain.
func collectLevelFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !d.IsDir() && slices.Contains(formats.FormatExtensions(), ext) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking directory %s: %w", p, err)
		}
	}
	return files, nil
}

// checkLevelFile loads a level, which rejects layouts that cannot be
// solved. Loose ends in the solution are reported but allowed.
func checkLevelFile(path string, logger *log.Logger) (levels.Level, error) {
	lvl, err := loadLevelFile(path)
	if err != nil {
		return lvl, err
	}

	grid, err := lvl.Build()
	if err != nil {
		return lvl, err
	}
	if stats := core.ComputeGridStats(grid); stats.LooseEnds > 0 {
		logger.Warn("solution has loose ends", "id", lvl.ID, "loose_ends", stats.LooseEnds)
	}
	return lvl, nil
}
