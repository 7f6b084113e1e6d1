// Package formats provides pluggable level file format parsers.
package formats

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
)

//go:embed level.schema.json
var levelSchemaJSON string

var levelSchema = jsonschema.MustCompileString("level.schema.json", levelSchemaJSON)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Radius   int               `yaml:"radius,omitempty"`
	Rows     []string          `yaml:"rows"`
	Source   YAMLCoord         `yaml:"source"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCoord represents a tile position.
type YAMLCoord struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Radius   int // 0 means derive from the wiring
	Rows     int
	Cols     int
	Tiles    [][]core.TileSpec
	Source   core.Coord
	Metadata map[string]string
}

// ParseYAML parses and validates a YAML level file.
//
// Each row string holds one character per tile: either a hex digit giving
// the link mask (N=1 E=2 S=4 W=8) or the matching box-drawing glyph.
func ParseYAML(data []byte) (Level, error) {
	if err := ValidateYAML(data); err != nil {
		return Level{}, err
	}

	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Radius:   yl.Radius,
		Rows:     len(yl.Rows),
		Cols:     utf8.RuneCountInString(yl.Rows[0]),
		Tiles:    make([][]core.TileSpec, len(yl.Rows)),
		Source:   core.C(yl.Source.Row, yl.Source.Col),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}

	for r, line := range yl.Rows {
		if n := utf8.RuneCountInString(line); n != level.Cols {
			return Level{}, fmt.Errorf("row %d: expected %d tiles, got %d", r, level.Cols, n)
		}
		level.Tiles[r] = make([]core.TileSpec, 0, level.Cols)
		c := 0
		for _, ch := range line {
			links, err := ParseTile(ch)
			if err != nil {
				return Level{}, fmt.Errorf("row %d col %d: %w", r, c, err)
			}
			level.Tiles[r] = append(level.Tiles[r], core.TileSpec{
				Links:  links,
				Source: r == level.Source.Row && c == level.Source.Col,
			})
			c++
		}
	}

	if level.Source.Row >= level.Rows || level.Source.Col >= level.Cols {
		return Level{}, fmt.Errorf("source %s outside %dx%d board", level.Source, level.Rows, level.Cols)
	}

	return level, nil
}

// ValidateYAML checks a YAML level document against the level schema.
func ValidateYAML(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-typed values.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting to json: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("converting to json: %w", err)
	}

	if err := levelSchema.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// ParseTile converts one row character to a link mask.
func ParseTile(ch rune) (core.Links, error) {
	if v, err := strconv.ParseUint(string(ch), 16, 8); err == nil {
		return core.Links(v), nil
	}
	if l, ok := core.ParseGlyph(ch); ok {
		return l, nil
	}
	return core.LinkNone, fmt.Errorf("unknown tile %q", ch)
}

// MarshalYAML encodes a level back to the YAML file format, using hex
// digits for the rows.
func MarshalYAML(l Level) ([]byte, error) {
	yl := YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Radius:   l.Radius,
		Rows:     make([]string, len(l.Tiles)),
		Source:   YAMLCoord{Row: l.Source.Row, Col: l.Source.Col},
		Metadata: l.Metadata,
	}
	for r, line := range l.Tiles {
		var sb bytes.Buffer
		for _, ts := range line {
			fmt.Fprintf(&sb, "%x", uint8(ts.Links))
		}
		yl.Rows[r] = sb.String()
	}
	return yaml.Marshal(yl)
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
