// Package config loads and validates the project configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

// DefaultFileName is the config file looked up when none is given.
const DefaultFileName = ".sqlporter.yml"

const (
	defaultMacroOutput = "macros/portable_functions.sql"
	defaultModelPath   = "models"
)

// ErrTooFewAdapters is returned when the config names fewer than two
// dialects; with a single dialect there is nothing to diverge from.
var ErrTooFewAdapters = errors.New("at least 2 adapters must be specified")

// ErrEmptyConfig is returned for a present but empty config file.
var ErrEmptyConfig = errors.New("config file is empty")

type fileConfig struct {
	Adapters    []string `yaml:"adapters"`
	MacroOutput string   `yaml:"macro_output"`
	ScanProject *bool    `yaml:"scan_project"`
	ModelPaths  []string `yaml:"model_paths"`
}

// Load reads the config file at path. Relative paths in the file are
// resolved against the config file's directory, which becomes the project
// root.
func Load(path m.Path) (m.Config, error) {
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("config file not found: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return m.Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	if len(fc.Adapters) == 0 && fc.MacroOutput == "" && fc.ScanProject == nil && fc.ModelPaths == nil {
		return m.Config{}, ErrEmptyConfig
	}

	if len(fc.Adapters) < 2 {
		return m.Config{}, ErrTooFewAdapters
	}

	projectRoot := filepath.Dir(string(path))

	macroOutput := fc.MacroOutput
	if macroOutput == "" {
		macroOutput = defaultMacroOutput
	}

	scanProject := true
	if fc.ScanProject != nil {
		scanProject = *fc.ScanProject
	}

	var modelPaths []m.Path

	if scanProject {
		rawPaths := fc.ModelPaths
		if len(rawPaths) == 0 {
			rawPaths = []string{defaultModelPath}
		}

		for _, p := range rawPaths {
			modelPaths = append(modelPaths, m.Path(filepath.Join(projectRoot, p)))
		}
	}

	return m.Config{
		Adapters:    fc.Adapters,
		MacroOutput: m.Path(filepath.Join(projectRoot, macroOutput)),
		ScanProject: scanProject,
		ModelPaths:  modelPaths,
		ProjectRoot: m.Path(projectRoot),
	}, nil
}
