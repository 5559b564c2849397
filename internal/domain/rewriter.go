// Package domain contains the scan, generate and rewrite workflows.
package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mouse-blink/sqlporter/internal/adapter"
	m "github.com/mouse-blink/sqlporter/internal/model"
	"github.com/mouse-blink/sqlporter/internal/sqldialect"
	"github.com/mouse-blink/sqlporter/internal/template"
)

const rewrittenFilePerm = 0o644

var macroCallPattern = regexp.MustCompile(`(?is)^[A-Z_][A-Z0-9_]*\s*\((.*)\)$`)

// orderOnlyAggregates are behaviorally uniform across dialects when called
// without arguments and must never be rewritten.
var orderOnlyAggregates = map[string]bool{
	"count": true,
	"sum":   true,
	"min":   true,
	"max":   true,
	"avg":   true,
}

// rewriteSQLFile runs the full per-file pipeline and reports whether the
// file's text would change. Every failure mode degrades to "not modified":
// unreadable files, unsafe templates and unparsable spans are skipped, never
// surfaced as errors.
func rewriteSQLFile(fs adapter.SourceFSAdapter, path m.Path, dialects []string, primaryDialect string, dryRun bool) bool {
	raw, err := fs.ReadFile(path)
	if err != nil || len(raw) == 0 {
		return false
	}

	original := string(raw)

	regions := template.Classify(original)
	if verdict := template.CanSafelyRewrite(regions); !verdict.CanRewrite {
		return false
	}

	spans := template.ExtractMaskedSpans(original, regions)
	if len(spans) == 0 {
		return false
	}

	primary, err := sqldialect.Get(primaryDialect)
	if err != nil {
		return false
	}

	modified := original
	offset := 0

	for _, span := range spans {
		modified, offset = processSpan(modified, offset, span, dialects, primary)
	}

	if modified == original {
		return false
	}

	if !dryRun {
		if err := fs.WriteFile(path, []byte(modified), rewrittenFilePerm); err != nil {
			return false
		}
	}

	return true
}

// processSpan rewrites one masked span inside content. The cumulative
// offset tracks how much earlier spans grew or shrank so this span's slice
// is still addressed correctly.
func processSpan(content string, offset int, span m.MaskedSpan, dialects []string, primary sqldialect.Profile) (string, int) {
	root, err := primary.Parse(span.MaskedSQL)
	if err != nil {
		// Parse failure skips this span; other spans still proceed.
		return content, offset
	}

	candidates := sqldialect.CollectFunctions(root, primary)

	directives := filterRewritable(candidates, dialects, primary)
	if len(directives) == 0 {
		return content, offset
	}

	// Longest first, so a short name never matches inside a longer call's
	// text and corrupts it.
	sort.SliceStable(directives, func(i, j int) bool {
		return len(directives[i].OriginalText) > len(directives[j].OriginalText)
	})

	adjustedStart := span.Start + offset
	adjustedEnd := span.End + offset
	originalRegion := content[adjustedStart:adjustedEnd]

	modifiedRegion := applyReplacements(originalRegion, directives)
	if modifiedRegion == originalRegion {
		return content, offset
	}

	content = content[:adjustedStart] + modifiedRegion + content[adjustedEnd:]
	offset += len(modifiedRegion) - len(originalRegion)

	return content, offset
}

// filterRewritable applies the eligibility and portability filters and
// synthesizes the replacement directive for every surviving call.
func filterRewritable(candidates []sqldialect.FunctionCandidate, dialects []string, primary sqldialect.Profile) []m.RewriteDirective {
	var directives []m.RewriteDirective

	for _, cand := range candidates {
		rendered, err := primary.Render(cand.Node)
		if err != nil {
			continue
		}

		if !shouldRewriteFunction(cand.Name, rendered, sqldialect.ArgCount(cand.Node)) {
			continue
		}

		if !sqldialect.FunctionDiffers(cand.Node, dialects) {
			continue
		}

		directives = append(directives, m.RewriteDirective{
			Depth:           cand.Depth,
			OriginalText:    rendered,
			ReplacementText: createMacroCall(cand.Name, rendered),
		})
	}

	return directives
}

// shouldRewriteFunction excludes calls whose canonical rendering contains a
// wildcard argument and argument-less order-only aggregates.
func shouldRewriteFunction(name, renderedSQL string, argCount int) bool {
	if strings.Contains(renderedSQL, "*") {
		return false
	}

	return !(argCount == 0 && orderOnlyAggregates[strings.ToLower(name)])
}

// createMacroCall builds the portable_* macro invocation replacing a call.
// The call's interior is re-wrapped as a quoted literal unless it already is
// one, so the dispatcher macro can receive either a raw SQL fragment or a
// literal.
func createMacroCall(name, renderedSQL string) string {
	macroName := "portable_" + strings.ToLower(name)

	match := macroCallPattern.FindStringSubmatch(renderedSQL)
	if match == nil {
		return fmt.Sprintf("{{ %s() }}", macroName)
	}

	args := strings.TrimSpace(match[1])
	if args != "" && !strings.HasPrefix(args, "'") && !strings.HasPrefix(args, `"`) {
		return fmt.Sprintf("{{ %s('%s') }}", macroName, args)
	}

	return fmt.Sprintf("{{ %s(%s) }}", macroName, args)
}

// applyReplacements substitutes each directive's first occurrence into the
// region, feeding the updated text into the next directive.
func applyReplacements(region string, directives []m.RewriteDirective) string {
	modified := region

	for _, d := range directives {
		pattern := findPattern(d.OriginalText, modified)
		if pattern == "" {
			continue
		}

		if insideOpenExpression(pattern, modified) {
			continue
		}

		modified = strings.Replace(modified, pattern, d.ReplacementText, 1)
	}

	return modified
}

// findPattern locates renderedSQL in the region, first case-sensitively,
// then case-insensitively with the original casing recovered. Dialect
// rendering casing may not match what the author wrote.
func findPattern(renderedSQL, region string) string {
	if strings.Contains(region, renderedSQL) {
		return renderedSQL
	}

	loweredSQL := strings.ToLower(renderedSQL)
	loweredRegion := strings.ToLower(region)

	start := strings.Index(loweredRegion, loweredSQL)
	if start < 0 {
		return ""
	}

	return region[start : start+len(renderedSQL)]
}

// insideOpenExpression approximates "is this match inside an unclosed
// template expression" by counting unmatched openers before the match. The
// brace-count heuristic can misfire on nested template text; tracking exact
// region boundaries from the classifier would be stricter.
func insideOpenExpression(pattern, region string) bool {
	at := strings.Index(region, pattern)
	if at < 0 {
		return false
	}

	before := region[:at]

	return strings.Count(before, "{{")-strings.Count(before, "}}") > 0
}
