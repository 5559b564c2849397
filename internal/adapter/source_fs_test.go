package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

func TestListSQLFiles(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "staging", "deep"), 0o755))

	wanted := []string{
		filepath.Join(root, "orders.sql"),
		filepath.Join(root, "staging", "users.SQL"),
		filepath.Join(root, "staging", "deep", "events.sql"),
	}
	ignored := []string{
		filepath.Join(root, "schema.yml"),
		filepath.Join(root, "staging", "readme.md"),
	}

	for _, path := range append(append([]string{}, wanted...), ignored...) {
		require.NoError(t, os.WriteFile(path, []byte("SELECT 1"), 0o644))
	}

	fs := NewLocalSourceFSAdapter()

	files, err := fs.ListSQLFiles(m.Path(root))
	require.NoError(t, err)

	found := make([]string, len(files))
	for i, f := range files {
		found[i] = string(f)
	}

	assert.ElementsMatch(t, wanted, found)
}

func TestListSQLFilesMissingRoot(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	_, err := fs.ListSQLFiles(m.Path(filepath.Join(t.TempDir(), "absent")))
	assert.Error(t, err)
}

func TestReadWriteRoundTrip(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "model.sql"))

	require.NoError(t, fs.WriteFile(path, []byte("SELECT id FROM users"), 0o644))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM users", string(content))

	info, err := fs.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestMkdirAll(t *testing.T) {
	fs := NewLocalSourceFSAdapter()
	dir := m.Path(filepath.Join(t.TempDir(), "macros", "generated"))

	require.NoError(t, fs.MkdirAll(dir, 0o755))

	info, err := fs.FileInfo(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
