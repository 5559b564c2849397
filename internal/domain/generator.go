package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mouse-blink/sqlporter/internal/adapter"
	m "github.com/mouse-blink/sqlporter/internal/model"
	"github.com/mouse-blink/sqlporter/internal/sqldialect"
)

const macroFilePerm = 0o644

// generateMacros writes the dispatching-macro library for the given
// function names and returns the output path. Each function gets a
// portable_* entry macro delegating through adapter.dispatch plus one
// implementation per configured adapter using that adapter's spelling.
func generateMacros(fs adapter.SourceFSAdapter, cfg m.Config, functions []string) (m.Path, error) {
	names := append([]string(nil), functions...)
	sort.Strings(names)

	var sb strings.Builder

	sb.WriteString("-- Generated by sqlporter. Do not edit by hand.\n")

	for _, name := range names {
		sb.WriteString("\n")
		sb.WriteString(renderMacroSet(name, cfg.Adapters))
	}

	dir := m.Path(filepath.Dir(string(cfg.MacroOutput)))
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating macro output directory: %w", err)
	}

	if err := fs.WriteFile(cfg.MacroOutput, []byte(sb.String()), macroFilePerm); err != nil {
		return "", fmt.Errorf("writing macro library: %w", err)
	}

	return cfg.MacroOutput, nil
}

func renderMacroSet(functionName string, adapters []string) string {
	lower := strings.ToLower(functionName)

	var sb strings.Builder

	fmt.Fprintf(&sb, "{%% macro portable_%s(expression) %%}\n", lower)
	fmt.Fprintf(&sb, "  {{ return(adapter.dispatch('%s', 'portable')(expression)) }}\n", lower)
	sb.WriteString("{% endmacro %}\n")

	// dbt falls back to default__ when no adapter-specific macro matches;
	// the first configured adapter's spelling is the default.
	if len(adapters) > 0 {
		sb.WriteString("\n")
		sb.WriteString(renderImplMacro("default", lower, sqldialect.SpellingOf(adapters[0], functionName)))
	}

	for _, adapterName := range adapters {
		sb.WriteString("\n")
		sb.WriteString(renderImplMacro(
			sqldialect.Normalize(adapterName),
			lower,
			sqldialect.SpellingOf(adapterName, functionName),
		))
	}

	return sb.String()
}

func renderImplMacro(prefix, lowerName, spelling string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "{%% macro %s__%s(expression) %%}\n", prefix, lowerName)
	fmt.Fprintf(&sb, "  %s({{ expression }})\n", spelling)
	sb.WriteString("{% endmacro %}\n")

	return sb.String()
}
