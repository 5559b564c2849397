package domain

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/sqlporter/internal/adapter"
	"github.com/mouse-blink/sqlporter/internal/controller"
	m "github.com/mouse-blink/sqlporter/internal/model"
	"github.com/mouse-blink/sqlporter/internal/sqldialect"
)

// Workflow defines the interface for the scan, generate and rewrite
// operations driven by the CLI.
type Workflow interface {
	Scan(cfg m.Config) (m.ScanResult, error)
	Rewrite(cfg m.Config, dryRun bool, threads int) ([]m.Path, error)
	Generate(cfg m.Config, functions []string) (m.Path, error)
	LibraryFunctions(cfg m.Config) ([]string, error)
}

type workflow struct {
	fs adapter.SourceFSAdapter
	ui controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI) Workflow {
	return &workflow{fs: fs, ui: ui}
}

// Scan tallies function calls across the model trees and keeps only the
// names whose catalogs diverge across the configured dialects.
func (w *workflow) Scan(cfg m.Config) (m.ScanResult, error) {
	if !cfg.ScanProject {
		return m.ScanResult{}, nil
	}

	primary, err := sqldialect.Get(cfg.PrimaryAdapter())
	if err != nil {
		return nil, err
	}

	files := w.collectFiles(cfg.ModelPaths)

	var mu sync.Mutex

	tally := make(m.ScanResult)

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range files {
		path := path

		g.Go(func() error {
			names := scanSQLFile(w.fs, path, primary)

			mu.Lock()
			for _, name := range names {
				tally[name]++
			}
			mu.Unlock()

			return nil
		})
	}

	// Workers never fail; a broken file simply contributes nothing.
	_ = g.Wait()

	differing, err := sqldialect.CatalogDifferences(cfg.Adapters)
	if err != nil {
		return nil, err
	}

	return intersectDifferences(tally, differing), nil
}

// Rewrite runs the per-file rewrite pipeline over every model tree and
// returns the files whose text changed (or would change under dryRun).
func (w *workflow) Rewrite(cfg m.Config, dryRun bool, threads int) ([]m.Path, error) {
	if threads <= 0 {
		threads = 1
	}

	files := w.collectFiles(cfg.ModelPaths)
	w.ui.StartRewrite(len(files))

	var mu sync.Mutex

	var modified []m.Path

	g := new(errgroup.Group)
	g.SetLimit(threads)

	for _, path := range files {
		path := path

		g.Go(func() error {
			changed := rewriteSQLFile(w.fs, path, cfg.Adapters, cfg.PrimaryAdapter(), dryRun)
			if changed {
				mu.Lock()
				modified = append(modified, path)
				mu.Unlock()
			}

			w.ui.FileProcessed(path, changed)

			return nil
		})
	}

	_ = g.Wait()
	w.ui.FinishRewrite()

	// Completion order is scheduling-dependent; sort for stable output.
	sort.Slice(modified, func(i, j int) bool { return modified[i] < modified[j] })

	return modified, nil
}

// Generate writes the dispatching-macro library for the given functions.
func (w *workflow) Generate(cfg m.Config, functions []string) (m.Path, error) {
	return generateMacros(w.fs, cfg, functions)
}

// LibraryFunctions returns every function name known to diverge across the
// configured dialects, independent of what the project uses.
func (w *workflow) LibraryFunctions(cfg m.Config) ([]string, error) {
	return sqldialect.CatalogDifferences(cfg.Adapters)
}

// collectFiles enumerates SQL files under each existing model root.
// Nonexistent or unreadable roots contribute nothing.
func (w *workflow) collectFiles(roots []m.Path) []m.Path {
	var files []m.Path

	for _, root := range roots {
		if _, err := w.fs.FileInfo(root); err != nil {
			continue
		}

		found, err := w.fs.ListSQLFiles(root)
		if err != nil {
			continue
		}

		files = append(files, found...)
	}

	return files
}
