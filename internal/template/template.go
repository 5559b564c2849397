package template

import (
	"strings"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

// safeFunctions is the allowlist of accessor calls whose expressions can be
// masked with a value placeholder: they always render to a relation name or
// a scalar, never to arbitrary SQL.
var safeFunctions = map[string]bool{
	"ref":     true,
	"source":  true,
	"var":     true,
	"config":  true,
	"this":    true,
	"target":  true,
	"env_var": true,
}

// controlFlowKeywords is the set of block openers and closers that masking
// treats as opaque. Anything else in a {% %} block vetoes the file.
var controlFlowKeywords = map[string]bool{
	"if":       true,
	"elif":     true,
	"else":     true,
	"endif":    true,
	"for":      true,
	"endfor":   true,
	"block":    true,
	"endblock": true,
	"macro":    true,
	"endmacro": true,
	"set":      true,
	"endset":   true,
}

const (
	// expressionPlaceholder stands in for a safe expression: it occupies a
	// value position, so no trailing comma.
	expressionPlaceholder = " __PLACEHOLDER__ "
	// blockPlaceholder stands in for control flow and unsafe constructs;
	// the trailing comma preserves argument-list validity while parsing.
	blockPlaceholder = " __JINJA__, "
)

// Classify partitions source into an ordered, gap-free region list. On a
// lexer failure it returns a single unsafe region spanning the whole text,
// never a partial result.
func Classify(source string) []m.Region {
	pieces, err := lex(source)
	if err != nil {
		return []m.Region{{
			Start:   0,
			End:     len(source),
			Kind:    m.RegionUnsafe,
			Content: source,
		}}
	}

	regions := make([]m.Region, 0, len(pieces))

	for _, p := range pieces {
		regions = append(regions, m.Region{
			Start:   p.start,
			End:     p.end,
			Kind:    classifyPiece(p),
			Content: p.content,
		})
	}

	return regions
}

func classifyPiece(p piece) m.RegionKind {
	switch p.kind {
	case pieceData:
		return m.RegionStatic
	case pieceExpression:
		if safeFunctions[firstName(p.content)] && balancedParens(p.content) {
			return m.RegionSafeExpression
		}

		return m.RegionUnsafe
	case pieceBlock:
		if controlFlowKeywords[firstName(p.content)] {
			return m.RegionControlFlow
		}

		return m.RegionUnsafe
	case pieceComment:
		// Comments render to nothing; masking them like control flow keeps
		// the region list tiling the whole file.
		return m.RegionControlFlow
	}

	return m.RegionUnsafe
}

// balancedParens checks parenthesis nesting in a unit's interior, skipping
// string literals. An allowlisted name with broken nesting is still an
// invalid template and must not be masked.
func balancedParens(content string) bool {
	depth := 0
	i := 0

	for i < len(content) {
		switch content[i] {
		case '\'', '"':
			end, err := scanString(content, i)
			if err != nil {
				return false
			}

			i = end
		case '(':
			depth++
			i++
		case ')':
			depth--
			if depth < 0 {
				return false
			}

			i++
		default:
			i++
		}
	}

	return depth == 0
}

// CanSafelyRewrite reports whether the region list permits in-place
// rewriting. Control flow is fine because masking treats it as opaque; only
// unrecognized constructs veto the file.
func CanSafelyRewrite(regions []m.Region) m.SafetyVerdict {
	for _, r := range regions {
		if r.Kind == m.RegionUnsafe {
			return m.SafetyVerdict{
				CanRewrite: false,
				Reason:     "template contains complex expressions",
			}
		}
	}

	return m.SafetyVerdict{
		CanRewrite: true,
		Reason:     "template is safe to rewrite",
	}
}

// ExtractMaskedSpans builds the parse-safe projection of source. It returns
// nil when the masked text is whitespace only, otherwise exactly one span
// covering the whole file.
func ExtractMaskedSpans(source string, regions []m.Region) []m.MaskedSpan {
	var masked strings.Builder

	for _, r := range regions {
		switch r.Kind {
		case m.RegionStatic:
			masked.WriteString(r.Content)
		case m.RegionSafeExpression:
			masked.WriteString(expressionPlaceholder)
		case m.RegionControlFlow, m.RegionUnsafe:
			masked.WriteString(blockPlaceholder)
		}
	}

	if strings.TrimSpace(masked.String()) == "" {
		return nil
	}

	return []m.MaskedSpan{{
		Start:     0,
		End:       len(source),
		MaskedSQL: masked.String(),
	}}
}
