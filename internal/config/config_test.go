package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

func writeConfig(t *testing.T, content string) m.Path {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `adapters:
  - spark
  - duckdb
macro_output: macros/shared.sql
model_paths:
  - models/staging
  - models/marts
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	root := filepath.Dir(string(path))
	assert.Equal(t, []string{"spark", "duckdb"}, cfg.Adapters)
	assert.Equal(t, m.Path(filepath.Join(root, "macros/shared.sql")), cfg.MacroOutput)
	assert.True(t, cfg.ScanProject)
	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "models/staging")),
		m.Path(filepath.Join(root, "models/marts")),
	}, cfg.ModelPaths)
	assert.Equal(t, m.Path(root), cfg.ProjectRoot)
	assert.Equal(t, "spark", cfg.PrimaryAdapter())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `adapters: [postgres, snowflake]`)

	cfg, err := Load(path)
	require.NoError(t, err)

	root := filepath.Dir(string(path))
	assert.Equal(t, m.Path(filepath.Join(root, "macros/portable_functions.sql")), cfg.MacroOutput)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "models"))}, cfg.ModelPaths)
}

func TestLoadScanProjectDisabled(t *testing.T) {
	path := writeConfig(t, `adapters: [postgres, snowflake]
scan_project: false
model_paths: [models]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.ScanProject)
	assert.Empty(t, cfg.ModelPaths)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(m.Path(filepath.Join(t.TempDir(), DefaultFileName)))
	assert.ErrorContains(t, err, "config file not found")
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrEmptyConfig)
}

func TestLoadTooFewAdapters(t *testing.T) {
	_, err := Load(writeConfig(t, `adapters: [postgres]`))
	assert.ErrorIs(t, err, ErrTooFewAdapters)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "adapters: [unclosed"))
	assert.ErrorContains(t, err, "invalid config file")
}
