// Package model defines the data structures shared across the sqlporter pipeline.
package model

// RegionKind represents the category of a template region.
type RegionKind string

const (
	// RegionStatic represents plain SQL text between template constructs.
	RegionStatic RegionKind = "static"
	// RegionSafeExpression represents an allowlisted {{ ... }} expression
	// (ref, source, var and friends) that masking can stand in for.
	RegionSafeExpression RegionKind = "safe_expression"
	// RegionControlFlow represents a recognized {% ... %} block opener or
	// closer (if/for/macro/set and their end keywords).
	RegionControlFlow RegionKind = "control_flow"
	// RegionUnsafe represents any template construct the rewriter must not
	// touch. A single unsafe region vetoes the whole file.
	RegionUnsafe RegionKind = "unsafe"
)

// Region is a contiguous slice of the original source text. The ordered
// region list for a file tiles [0, len(source)) with no gaps or overlaps,
// and Content always equals source[Start:End].
type Region struct {
	Start   int
	End     int
	Kind    RegionKind
	Content string
}

// SafetyVerdict reports whether a file's region list permits rewriting.
type SafetyVerdict struct {
	CanRewrite bool
	Reason     string
}

// MaskedSpan is a parse-safe projection of a file: static regions pass
// through verbatim while template regions are replaced with placeholder
// tokens. Start and End are offsets into the original text.
type MaskedSpan struct {
	Start     int
	End       int
	MaskedSQL string
}
