package model

// Config holds the project configuration consumed by the scan, generate and
// rewrite workflows. Adapters is an ordered list of at least two dialect
// identifiers; the first entry is the primary dialect used for canonical
// rendering. Ordering is a user contract, not arbitrary.
type Config struct {
	Adapters    []string
	MacroOutput Path
	ScanProject bool
	ModelPaths  []Path
	ProjectRoot Path
}

// PrimaryAdapter returns the first configured adapter. The config loader
// guarantees at least two entries, but an empty slice yields "".
func (c Config) PrimaryAdapter() string {
	if len(c.Adapters) == 0 {
		return ""
	}

	return c.Adapters[0]
}
