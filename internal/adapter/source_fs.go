// Package adapter contains infrastructure adapters for the sqlporter CLI.
package adapter

import (
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

const sqlFileExt = ".sql"

// SourceFSAdapter abstracts the filesystem operations the workflows rely on
// when scanning and rewriting model trees. It hides direct os access so the
// domain logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ListSQLFiles returns every SQL-suffixed file under root, recursively.
	ListSQLFiles(root m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check
	// existence before walking.
	FileInfo(path m.Path) (os.FileInfo, error)

	// MkdirAll creates a directory tree for generated output.
	MkdirAll(path m.Path, perm os.FileMode) error
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the os and
// filepath packages.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ListSQLFiles walks root and collects *.sql files in walk order.
func (a *LocalSourceFSAdapter) ListSQLFiles(root m.Path) ([]m.Path, error) {
	var files []m.Path

	err := filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if strings.EqualFold(filepath.Ext(path), sqlFileExt) {
			files = append(files, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// MkdirAll creates the directory tree at path.
func (a *LocalSourceFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}
