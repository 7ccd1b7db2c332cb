package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/holes/internal/holes"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	mode, err := cfg.ExtractMode()
	if err != nil || mode != holes.Strict {
		t.Errorf("ExtractMode() = %q, %v; want strict", mode, err)
	}
	tbl, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Holes('8') != 2 {
		t.Errorf("default table Holes('8') = %d, want 2", tbl.Holes('8'))
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `mode: lenient
format: json
max_holes: 12
glyphs:
  "4": 0
  "2": 1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mode != "lenient" || cfg.Format != "json" || cfg.MaxHoles != 12 {
		t.Errorf("Load() = %+v", cfg)
	}
	tbl, err := cfg.Table()
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Holes('4') != 0 || tbl.Holes('2') != 1 || tbl.Holes('8') != 2 {
		t.Errorf("table overrides not applied: %v", tbl)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "max_holes: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "strict" || cfg.Format != "text" {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() error for empty file: %v", err)
	}
	if cfg.Mode != "strict" {
		t.Errorf("Mode = %q, want strict", cfg.Mode)
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
	if !strings.Contains(err.Error(), "config file") {
		t.Errorf("error should mention 'config file', got: %s", err)
	}
}

func TestLoad_NoPathNoFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Format != "text" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_NoPathUsesWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFileName), []byte("mode: lenient\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "lenient" {
		t.Errorf("Mode = %q, want lenient", cfg.Mode)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"mode", "mode: fuzzy\n", "invalid mode"},
		{"format", "format: html\n", "invalid format"},
		{"max holes", "max_holes: -1\n", "invalid max_holes"},
		{"glyph key", "glyphs:\n  x: 1\n", "invalid glyph"},
		{"glyph value", "glyphs:\n  \"8\": 12\n", "invalid hole count"},
		{"unknown field", "colour: red\n", "parsing config file"},
		{"bad yaml", "mode: [\n", "parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
			if !strings.Contains(err.Error(), "config file") {
				t.Errorf("error should mention 'config file', got: %s", err)
			}
		})
	}
}
