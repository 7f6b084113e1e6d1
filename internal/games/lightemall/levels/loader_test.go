package levels_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

func testdataPath() string {
	return filepath.Join("testdata", "levels")
}

func loadTestdata(t *testing.T, id string) levels.Level {
	t.Helper()
	lvls, err := levels.NewLoader(testdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	lvl, err := lvls.ByID(id)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	return lvl
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml fails the schema, unsolvable.yaml cannot light every
	// tile and notes.txt is not a level.
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if ids := lvls.IDs(); ids[0] != "lvl01" || ids[1] != "lvl02" {
		t.Errorf("unexpected ids: %v", ids)
	}

	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderLoadLevel01(t *testing.T) {
	lvl := loadTestdata(t, "lvl01")

	if lvl.Name != "Intro" {
		t.Errorf("expected Name 'Intro', got %q", lvl.Name)
	}
	if lvl.Rows != 1 || lvl.Cols != 4 {
		t.Errorf("expected 1x4, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if lvl.Radius != 4 {
		t.Errorf("expected radius 4, got %d", lvl.Radius)
	}
	if lvl.Source != core.C(0, 0) {
		t.Errorf("expected source (0,0), got %v", lvl.Source)
	}
	if lvl.Metadata["author"] != "test" {
		t.Errorf("expected author metadata, got %v", lvl.Metadata)
	}

	g, err := lvl.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if err := core.ValidateSolved(g, lvl.Radius); err != nil {
		t.Errorf("lvl01 should be solved as written: %v", err)
	}
}

func TestLoaderGlyphRows(t *testing.T) {
	lvl := loadTestdata(t, "lvl02")
	if lvl.Rows != 3 || lvl.Cols != 3 {
		t.Fatalf("expected 3x3, got %dx%d", lvl.Rows, lvl.Cols)
	}
	if lvl.Tiles[0][0].Links != core.LinkEast|core.LinkSouth {
		t.Errorf("expected ┏ to parse as ES, got %v", lvl.Tiles[0][0].Links)
	}
	if lvl.Tiles[1][1].Links != core.LinkSouth {
		t.Errorf("expected ╻ to parse as S, got %v", lvl.Tiles[1][1].Links)
	}
	if !lvl.Tiles[0][0].Source {
		t.Error("expected source at (0,0)")
	}
	if lvl.Name != "Glyphs" {
		t.Errorf("expected Name 'Glyphs', got %q", lvl.Name)
	}
}

func TestSetByIDMissing(t *testing.T) {
	lvls, err := levels.NewLoader(testdataPath()).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if _, err := lvls.ByID("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLoaderRejectsUnsolvableFile(t *testing.T) {
	_, err := levels.NewLoader(testdataPath()).LoadFile("unsolvable.yaml")
	if err == nil {
		t.Fatal("expected unsolvable level to be rejected")
	}
	if !strings.Contains(err.Error(), "NOT_SOLVED") {
		t.Errorf("expected NOT_SOLVED, got %v", err)
	}
}

func TestLevelValidate(t *testing.T) {
	good := loadTestdata(t, "lvl01")
	if err := good.Validate(); err != nil {
		t.Errorf("lvl01 should validate: %v", err)
	}

	tight := good
	tight.Radius = 2
	if err := tight.Validate(); err == nil {
		t.Error("expected radius 2 to leave tiles dark")
	}

	isolated := levels.Level{
		ID:   "iso",
		Rows: 1,
		Cols: 2,
		Tiles: [][]core.TileSpec{{
			{Links: core.LinkNone, Source: true},
			{Links: core.LinkWest},
		}},
	}
	if err := isolated.Validate(); err == nil {
		t.Error("expected isolated source to be rejected")
	}
}

func TestLoaderMissingDir(t *testing.T) {
	if _, err := levels.NewLoader(filepath.Join("testdata", "missing")).LoadAll(); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestBuiltinLevelsAreSolvable(t *testing.T) {
	lvls, err := levels.NewBuiltinLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) < 5 {
		t.Fatalf("expected at least 5 built-in levels, got %d", len(lvls))
	}

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			g, err := lvl.Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if err := core.ValidateGrid(g); err != nil {
				t.Fatalf("invalid grid: %v", err)
			}
			radius, err := lvl.EffectiveRadius(0)
			if err != nil {
				t.Fatalf("EffectiveRadius failed: %v", err)
			}
			if err := core.ValidateSolved(g, radius); err != nil {
				t.Errorf("solved layout does not light every tile: %v", err)
			}
			if stats := core.ComputeGridStats(g); stats.LooseEnds != 0 {
				t.Errorf("solved layout has %d loose ends", stats.LooseEnds)
			}
		})
	}
}

func TestEffectiveRadius(t *testing.T) {
	builtin, err := levels.NewBuiltinLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	lvl, err := builtin.ByID("lvl01")
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}

	r, err := lvl.EffectiveRadius(0)
	if err != nil {
		t.Fatalf("EffectiveRadius failed: %v", err)
	}
	if r != 4 {
		t.Errorf("expected derived radius 4 for a 4-tile row, got %d", r)
	}

	r, _ = lvl.EffectiveRadius(2)
	if r != 6 {
		t.Errorf("expected radius 6 with slack 2, got %d", r)
	}

	fixed, _ := builtin.ByID("lvl06")
	if r, _ := fixed.EffectiveRadius(3); r != 6 {
		t.Errorf("explicit radius should ignore slack, got %d", r)
	}
}

func TestLoadSetOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	custom := []byte("id: lvl01\nname: Replaced\nrows:\n  - \"28\"\nsource: {row: 0, col: 0}\n")
	if err := os.WriteFile(filepath.Join(dir, "mine.yaml"), custom, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	extra := []byte("id: zz-extra\nrows:\n  - \"28\"\nsource: {row: 0, col: 1}\n")
	if err := os.WriteFile(filepath.Join(dir, "extra.yaml"), extra, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	dark := []byte("id: zz-dark\nrows:\n  - \"20\"\nsource: {row: 0, col: 0}\n")
	if err := os.WriteFile(filepath.Join(dir, "dark.yaml"), dark, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	builtin, err := levels.NewBuiltinLoader().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	all, err := levels.LoadSet(dir, nil)
	if err != nil {
		t.Fatalf("LoadSet failed: %v", err)
	}
	if len(all) != len(builtin)+1 {
		t.Errorf("expected %d levels, got %d", len(builtin)+1, len(all))
	}
	if all[0].ID != "lvl01" || all[0].Name != "Replaced" {
		t.Errorf("expected lvl01 to be replaced, got %s %q", all[0].ID, all[0].Name)
	}
	if _, err := all.ByID("zz-dark"); err == nil {
		t.Error("unsolvable custom level should be skipped")
	}
	if all[len(all)-1].ID != "zz-extra" {
		t.Errorf("expected extra level last, got %s", all[len(all)-1].ID)
	}
	if all[0].Builtin {
		t.Error("replaced level should not be marked built-in")
	}
	if want := filepath.Join(dir, "mine.yaml"); all[0].FilePath != want {
		t.Errorf("expected file path %s, got %s", want, all[0].FilePath)
	}
	if !all[1].Builtin {
		t.Errorf("expected %s to be built-in", all[1].ID)
	}
}
