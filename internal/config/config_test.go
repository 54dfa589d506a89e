package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FontSize <= 0 {
		t.Error("font size should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.Theme != "matrix" {
		t.Errorf("expected theme matrix, got %s", cfg.Theme)
	}
	if cfg.Rain.SpeedMin >= cfg.Rain.SpeedMax {
		t.Errorf("speed range inverted: %f..%f", cfg.Rain.SpeedMin, cfg.Rain.SpeedMax)
	}
	if cfg.Rain.DepthLayers != 2 {
		t.Errorf("expected 2 depth layers, got %d", cfg.Rain.DepthLayers)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("crowded")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rain.ActiveColumnChance != 0.85 {
		t.Errorf("expected active chance 0.85, got %f", cfg.Rain.ActiveColumnChance)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("preset names not sorted: %v", names)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emotrix.yaml")

	want := DefaultConfig()
	want.Seed = 42
	want.Rain.TrailLen = 30
	if err := Save(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Seed != 42 || got.Rain.TrailLen != 30 {
		t.Errorf("round trip lost values: seed=%d trail=%d", got.Seed, got.Rain.TrailLen)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7

	ec := cfg.Engine(800, 600)
	if ec.Width != 800 || ec.Height != 600 {
		t.Errorf("canvas size not carried: %f x %f", ec.Width, ec.Height)
	}
	if ec.Seed != 7 {
		t.Errorf("seed not carried: %d", ec.Seed)
	}
	if ec.TrailLen != cfg.Rain.TrailLen {
		t.Errorf("trail len not carried: %d", ec.TrailLen)
	}
}
