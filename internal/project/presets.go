// Package project persists named parameter presets and application
// defaults as JSON under the user's config directory.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ys4i/wavetray/internal/model"
)

// Preset is a named, reusable parameter set.
type Preset struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Params model.Params `json:"params"`
}

// NewPreset creates a preset with a fresh short ID.
func NewPreset(name string, params model.Params) Preset {
	return Preset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Params: params,
	}
}

// DefaultConfigDir returns the default directory for wavetray files.
func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "wavetray"), nil
}

// DefaultPresetsPath returns the default file path for presets.
func DefaultPresetsPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.json"), nil
}

// SavePresets saves presets to a JSON file, creating the directory as
// needed.
func SavePresets(path string, presets []Preset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets loads presets from a JSON file. A missing file yields an
// empty slice, not an error.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Preset{}, nil
		}
		return nil, err
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q not found", name)
}

// LoadParamsFile reads a bare Params JSON file (as written by the
// -write-params flag of the CLI).
func LoadParamsFile(path string) (model.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Params{}, err
	}
	var params model.Params
	if err := json.Unmarshal(data, &params); err != nil {
		return model.Params{}, fmt.Errorf("failed to parse params file %s: %w", path, err)
	}
	return params, nil
}

// SaveParamsFile writes a bare Params JSON file.
func SaveParamsFile(path string, params model.Params) error {
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
