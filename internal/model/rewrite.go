package model

// Path represents a file system path.
type Path string

// RewriteDirective pairs the canonical text of a divergent function call
// with the macro invocation that replaces it. Depth records the nesting
// level of the call in the parsed tree; substitution order is decided by
// descending OriginalText length, with depth kept for diagnostics.
type RewriteDirective struct {
	Depth           int
	OriginalText    string
	ReplacementText string
}

// ScanResult maps a canonical function name to the number of call sites
// observed across the scanned file set.
type ScanResult map[string]int
