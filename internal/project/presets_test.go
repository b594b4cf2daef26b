package project

import (
	"path/filepath"
	"testing"

	"github.com/ys4i/wavetray/internal/model"
)

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presets.json")

	a := NewPreset("tall tray", model.DefaultParams())
	b := NewPreset("concentric tray", model.DefaultParams())
	b.Params.InfillMode = model.InfillConcentric

	if err := SavePresets(path, []Preset{a, b}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadPresets(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(loaded))
	}
	if loaded[0].Name != "tall tray" || loaded[1].Name != "concentric tray" {
		t.Error("preset names not preserved")
	}
	if loaded[1].Params.InfillMode != model.InfillConcentric {
		t.Error("preset params not preserved")
	}
	if loaded[0].ID == "" || loaded[0].ID == loaded[1].ID {
		t.Error("presets should keep distinct IDs")
	}
}

func TestLoadPresetsMissingFile(t *testing.T) {
	loaded, err := LoadPresets(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty slice, got %d presets", len(loaded))
	}
}

func TestFindPreset(t *testing.T) {
	presets := []Preset{NewPreset("one", model.DefaultParams())}
	if _, err := FindPreset(presets, "one"); err != nil {
		t.Errorf("expected to find preset: %v", err)
	}
	if _, err := FindPreset(presets, "two"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestParamsFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	want := model.DefaultParams()
	want.LayerCount = 30

	if err := SaveParamsFile(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadParamsFile(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.LayerCount != 30 {
		t.Errorf("expected layer count 30, got %d", got.LayerCount)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("loaded params should validate: %v", err)
	}
}
