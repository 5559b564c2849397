package template

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

func TestClassifyTilesWholeSource(t *testing.T) {
	sources := []string{
		"",
		"SELECT 1",
		"SELECT * FROM {{ ref('users') }}",
		"{% if x %} a {% endif %}",
		"{{ unknown_macro() }} trailing",
		"{# comment #}SELECT 1",
		"SELECT {{ ref('x') FROM", // lexer failure path
	}

	for _, source := range sources {
		regions := Classify(source)

		pos := 0

		for _, r := range regions {
			if r.Start != pos {
				t.Fatalf("source %q: region starts at %d, expected %d", source, r.Start, pos)
			}

			if r.Content != source[r.Start:r.End] {
				t.Fatalf("source %q: region content %q does not match slice", source, r.Content)
			}

			pos = r.End
		}

		if pos != len(source) {
			t.Fatalf("source %q: regions cover [0, %d), expected [0, %d)", source, pos, len(source))
		}
	}
}

func TestClassifyKinds(t *testing.T) {
	source := "SELECT * FROM {{ ref('users') }} {% if x %} w {% endif %} {{ run_query('q') }}"
	regions := Classify(source)

	var kinds []m.RegionKind
	for _, r := range regions {
		kinds = append(kinds, r.Kind)
	}

	expected := []m.RegionKind{
		m.RegionStatic,
		m.RegionSafeExpression,
		m.RegionStatic,
		m.RegionControlFlow,
		m.RegionStatic,
		m.RegionControlFlow,
		m.RegionStatic,
		m.RegionUnsafe,
	}

	if len(kinds) != len(expected) {
		t.Fatalf("expected %d regions, got %d: %v", len(expected), len(kinds), kinds)
	}

	for i, kind := range expected {
		if kinds[i] != kind {
			t.Errorf("region %d: expected %s, got %s", i, kind, kinds[i])
		}
	}
}

func TestCanSafelyRewritePureSQL(t *testing.T) {
	regions := Classify("SELECT * FROM users WHERE created_at > '2024-01-01'")

	verdict := CanSafelyRewrite(regions)
	if !verdict.CanRewrite {
		t.Fatalf("expected pure SQL to be rewritable: %s", verdict.Reason)
	}
}

func TestCanSafelyRewriteControlFlow(t *testing.T) {
	source := `
	SELECT *
	FROM users
	{% if include_deleted %}
	WHERE deleted_at IS NOT NULL
	{% endif %}
	`

	verdict := CanSafelyRewrite(Classify(source))
	if !verdict.CanRewrite {
		t.Fatalf("control flow should be rewritable: %s", verdict.Reason)
	}

	if !strings.Contains(strings.ToLower(verdict.Reason), "safe") {
		t.Fatalf("unexpected reason: %s", verdict.Reason)
	}
}

func TestCanSafelyRewriteRejectsUnknownExpression(t *testing.T) {
	verdict := CanSafelyRewrite(Classify("SELECT {{ run_query('q') }} FROM t"))
	if verdict.CanRewrite {
		t.Fatal("unknown expression should veto rewriting")
	}
}

func TestCanSafelyRewriteRejectsMalformedTemplate(t *testing.T) {
	verdict := CanSafelyRewrite(Classify("SELECT * FROM {{ ref('users' }}"))
	if verdict.CanRewrite {
		t.Fatal("unterminated expression should veto rewriting")
	}
}

func TestCanSafelyRewriteEmptyTemplate(t *testing.T) {
	verdict := CanSafelyRewrite(Classify(""))
	if !verdict.CanRewrite {
		t.Fatal("empty template should be vacuously safe")
	}
}

func TestExtractMaskedSpansMasksExpressions(t *testing.T) {
	source := "SELECT DATE_TRUNC('month', created_at) FROM {{ ref('users') }}"
	regions := Classify(source)

	spans := ExtractMaskedSpans(source, regions)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}

	span := spans[0]

	if span.Start != 0 || span.End != len(source) {
		t.Fatalf("span should cover the whole file, got [%d, %d)", span.Start, span.End)
	}

	if !strings.Contains(span.MaskedSQL, "DATE_TRUNC") {
		t.Fatalf("static SQL missing from masked text: %q", span.MaskedSQL)
	}

	if !strings.Contains(span.MaskedSQL, "__PLACEHOLDER__") {
		t.Fatalf("expected placeholder in masked text: %q", span.MaskedSQL)
	}

	if strings.Contains(span.MaskedSQL, "ref(") {
		t.Fatalf("expression leaked into masked text: %q", span.MaskedSQL)
	}
}

func TestExtractMaskedSpansControlFlowPlaceholder(t *testing.T) {
	source := "SELECT a {% if x %} , b {% endif %} FROM t"

	spans := ExtractMaskedSpans(source, Classify(source))
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}

	if !strings.Contains(spans[0].MaskedSQL, "__JINJA__,") {
		t.Fatalf("expected block placeholder, got %q", spans[0].MaskedSQL)
	}
}

func TestExtractMaskedSpansWhitespaceOnly(t *testing.T) {
	for _, source := range []string{"", "   \n\t  "} {
		spans := ExtractMaskedSpans(source, Classify(source))
		if len(spans) != 0 {
			t.Fatalf("source %q: expected no spans, got %d", source, len(spans))
		}
	}
}
