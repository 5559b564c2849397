package sqldialect

import (
	"fmt"
	"strings"
)

// Profile is one dialect's grammar surface: it parses masked SQL, renders
// parsed nodes back to that dialect's canonical text and exposes the
// function catalog the oracle compares.
type Profile interface {
	Name() string
	Parse(sql string) (Node, error)
	Render(n Node) (string, error)
	Catalog() map[string]string
}

type profile struct {
	name string
	// functions maps an uppercase surface name to its implementation
	// identity for this dialect.
	functions map[string]string
	// renders maps an implementation identity back to this dialect's
	// preferred surface spelling.
	renders map[string]string
}

var registry = buildCatalogs()

// aliasTable maps user-facing dialect spellings to canonical profile keys.
var aliasTable = map[string]string{
	"postgres":   dialectPostgres,
	"postgresql": dialectPostgres,
	"snowflake":  dialectSnowflake,
	"bigquery":   dialectBigQuery,
	"spark":      dialectSpark,
	"databricks": dialectDatabricks,
	"redshift":   dialectRedshift,
	"duckdb":     dialectDuckDB,
	"trino":      dialectTrino,
	"presto":     dialectPresto,
}

// Normalize maps a user-facing dialect identifier to its canonical profile
// key. Unknown identifiers pass through lowercased; they fail later at
// parse time if truly unsupported.
func Normalize(dialectID string) string {
	lowered := strings.ToLower(dialectID)
	if canonical, ok := aliasTable[lowered]; ok {
		return canonical
	}

	return lowered
}

// Get returns the registered profile for a dialect identifier.
func Get(dialectID string) (Profile, error) {
	p, ok := registry[Normalize(dialectID)]
	if !ok {
		return nil, fmt.Errorf("unsupported dialect %q", dialectID)
	}

	return p, nil
}

func (d *profile) Name() string {
	return d.name
}

// Parse tokenizes and parses masked SQL into a fragment tree, resolving
// function names against this dialect's catalog.
func (d *profile) Parse(sql string) (Node, error) {
	toks, err := tokenize(sql)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.name, err)
	}

	seq, err := d.parseTokens(toks)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.name, err)
	}

	return seq, nil
}

// Catalog exposes the surface-name to implementation-identity table.
func (d *profile) Catalog() map[string]string {
	return d.functions
}

// SpellingOf returns the dialect's preferred spelling for the
// implementation behind functionName, which may be spelled in any
// registered dialect's surface syntax. When no dialect knows the name it
// passes through uppercased.
func SpellingOf(dialectID, functionName string) string {
	upper := strings.ToUpper(functionName)

	p, ok := registry[Normalize(dialectID)]
	if !ok {
		return upper
	}

	if impl, ok := p.functions[upper]; ok {
		return p.renders[impl]
	}

	for _, name := range dialectNames {
		impl, ok := registry[name].functions[upper]
		if !ok {
			continue
		}

		if spelling, ok := p.renders[impl]; ok {
			return spelling
		}
	}

	return upper
}
