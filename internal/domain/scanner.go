package domain

import (
	m "github.com/mouse-blink/sqlporter/internal/model"
	"github.com/mouse-blink/sqlporter/internal/sqldialect"
	"github.com/mouse-blink/sqlporter/internal/template"
)

// scanSQLFile returns the canonical name of every function call found in
// one file. Unreadable files, unsafe templates and unparsable spans
// contribute nothing.
func scanSQLFile(fs adapterReader, path m.Path, primary sqldialect.Profile) []string {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil
	}

	source := string(raw)

	regions := template.Classify(source)
	if verdict := template.CanSafelyRewrite(regions); !verdict.CanRewrite {
		return nil
	}

	var names []string

	for _, span := range template.ExtractMaskedSpans(source, regions) {
		root, err := primary.Parse(span.MaskedSQL)
		if err != nil {
			continue
		}

		for _, cand := range sqldialect.CollectFunctions(root, primary) {
			names = append(names, cand.Name)
		}
	}

	return names
}

// adapterReader is the slice of the filesystem adapter the scanner needs.
type adapterReader interface {
	ReadFile(path m.Path) ([]byte, error)
}

// intersectDifferences drops tally entries for functions whose catalogs are
// uniform across the configured dialects; portable counts are discarded.
func intersectDifferences(tally m.ScanResult, differing []string) m.ScanResult {
	known := make(map[string]bool, len(differing))
	for _, name := range differing {
		known[name] = true
	}

	result := make(m.ScanResult)

	for name, count := range tally {
		if known[name] {
			result[name] = count
		}
	}

	return result
}
