package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg.Output != want.Output || cfg.Cache != want.Cache {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("output: site\ngroups: [core, ext]\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "site" {
		t.Fatalf("Output = %q, want site", cfg.Output)
	}
	if len(cfg.Groups) != 2 || cfg.Groups[0] != "core" {
		t.Fatalf("Groups = %v, want [core ext]", cfg.Groups)
	}
	want := DefaultConfig()
	if len(cfg.Input) != len(want.Input) || cfg.Input[0] != want.Input[0] {
		t.Fatalf("Input = %v, want the default globs to survive merge (%v)", cfg.Input, want.Input)
	}
}

func TestDefaultServeAddressIsEmptyForStdio(t *testing.T) {
	if addr := DefaultConfig().Serve.Address; addr != "" {
		t.Fatalf("Serve.Address default = %q, want empty so serve falls back to stdio", addr)
	}
}

func TestLoadMissingFileDefaultsServeAddressToStdio(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Serve.Address != "" {
		t.Fatalf("Serve.Address = %q, want empty (stdio) when cxxdoc.yaml sets nothing", cfg.Serve.Address)
	}
}

func TestSaveDefaultRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	if _, err := SaveDefault(dir); err != nil {
		t.Fatalf("first SaveDefault: %v", err)
	}
	if _, err := SaveDefault(dir); err == nil {
		t.Fatalf("second SaveDefault should have refused to overwrite")
	}
}
