package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "spread" {
		t.Errorf("expected scenario spread, got %s", cfg.Scenario)
	}
	if cfg.N != DefaultN {
		t.Errorf("expected n %d, got %d", DefaultN, cfg.N)
	}
	if cfg.K != DefaultK || cfg.Dt != DefaultDt {
		t.Errorf("unexpected rate params: k=%v dt=%v", cfg.K, cfg.Dt)
	}
	if cfg.Steps != DefaultSteps {
		t.Errorf("expected steps %d, got %d", DefaultSteps, cfg.Steps)
	}
}

func TestLatticeConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.K = 2.0
	cfg.Dt = 0.3

	lc := cfg.Lattice()
	if lc.N != cfg.N || lc.Steps != cfg.Steps {
		t.Errorf("shape mismatch: n=%d steps=%d", lc.N, lc.Steps)
	}
	if lc.K != 2.0 || lc.Dt != 0.3 {
		t.Errorf("rate params not carried: k=%v dt=%v", lc.K, lc.Dt)
	}
	if lc.Stable() {
		t.Error("k*dt = 0.6 should not be stable")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "frap"
	cfg.N = 80
	cfg.Gap = 20

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Scenario != "frap" || loaded.N != 80 || loaded.Gap != 20 {
		t.Errorf("roundtrip mismatch: %+v", loaded)
	}
}

func TestLoadPartialFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("n: 21\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.N != 21 {
		t.Errorf("expected n 21, got %d", cfg.N)
	}
	if cfg.K != DefaultK || cfg.Steps != DefaultSteps {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("frap", "classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}

	if cfg.N != 40 || cfg.Gap != 8 || cfg.Steps != 5000 {
		t.Errorf("unexpected classic preset: %+v", cfg)
	}
}

func TestGetPresetNotFound(t *testing.T) {
	if GetPreset("spread", "nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("nonexistent", "default") != nil {
		t.Error("expected nil for unknown scenario")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets("spread")
	if len(names) != 3 {
		t.Errorf("expected 3 spread presets, got %v", names)
	}

	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for unknown scenario")
	}
}
