// Package levels provides level loading functionality for LightEmAll.
// This package depends on core but core does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Radius   int // 0 means derive from the solved wiring
	Rows     int
	Cols     int
	Tiles    [][]core.TileSpec
	Source   core.Coord
	Metadata map[string]string
	FilePath string
	Builtin  bool // Embedded with the binary
}

// Build creates a fresh Grid in the level's solved layout.
func (l *Level) Build() (*core.Grid, error) {
	g, err := core.Build(l.Rows, l.Cols, l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// EffectiveRadius returns the level's radius, or when none is set the
// smallest radius that lights the whole solved board plus slack.
func (l *Level) EffectiveRadius(slack int) (int, error) {
	if l.Radius > 0 {
		return l.Radius, nil
	}
	g, err := l.Build()
	if err != nil {
		return 0, err
	}
	src, err := g.Source()
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", l.ID, err)
	}
	r := core.MinRadius(g, src) + slack
	if r < 1 {
		r = 1
	}
	return r, nil
}

// Validate checks that the solved layout is playable: exactly one
// source, nothing isolated, and every tile lit within the radius.
func (l *Level) Validate() error {
	g, err := l.Build()
	if err != nil {
		return err
	}
	if err := core.ValidateGrid(g); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	radius, err := l.EffectiveRadius(0)
	if err != nil {
		return err
	}
	if err := core.ValidateSolved(g, radius); err != nil {
		return fmt.Errorf("level %s: %w", l.ID, err)
	}
	return nil
}

// Set is an ordered list of levels.
type Set []Level

// ByID returns the level with the given ID.
func (s Set) ByID(id string) (Level, error) {
	for _, lvl := range s {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// IDs returns the level IDs in set order.
func (s Set) IDs() []string {
	ids := make([]string, len(s))
	for i, lvl := range s {
		ids[i] = lvl.ID
	}
	return ids
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS     fs.FS
	Root   string
	Logger *log.Logger // Optional; receives warnings for skipped files
}

// NewLoader creates a loader for a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{FS: os.DirFS(root), Root: "."}
}

// NewBuiltinLoader creates a loader for the levels shipped with the game.
func NewBuiltinLoader() *Loader {
	return &Loader{FS: builtinFS, Root: "builtin"}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse, or whose solved layout is unplayable, are
// skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() (Set, error) {
	var levels Set

	err := fs.WalkDir(l.FS, l.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping level file", "path", p, "error", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file and checks that it can be solved.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	lvl := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Radius:   parsed.Radius,
		Rows:     parsed.Rows,
		Cols:     parsed.Cols,
		Tiles:    parsed.Tiles,
		Source:   parsed.Source,
		Metadata: parsed.Metadata,
		FilePath: p,
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, fmt.Errorf("file %s: %w", p, err)
	}
	return lvl, nil
}

// LoadSet loads the built-in levels followed by any levels found in
// extraDir. A level in extraDir replaces a built-in level with the same ID.
func LoadSet(extraDir string, logger *log.Logger) (Set, error) {
	builtin := NewBuiltinLoader()
	builtin.Logger = logger
	all, err := builtin.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Builtin = true
	}
	if extraDir == "" {
		return all, nil
	}

	extra := NewLoader(extraDir)
	extra.Logger = logger
	custom, err := extra.LoadAll()
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(all))
	for i, lvl := range all {
		byID[lvl.ID] = i
	}
	for _, lvl := range custom {
		lvl.FilePath = filepath.Join(extraDir, filepath.FromSlash(lvl.FilePath))
		if i, ok := byID[lvl.ID]; ok {
			all[i] = lvl
			continue
		}
		all = append(all, lvl)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID < all[j].ID
	})
	return all, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
