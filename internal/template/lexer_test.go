package template

import (
	"testing"
)

func TestLexSplitsDataAndUnits(t *testing.T) {
	source := "SELECT * FROM {{ ref('users') }} WHERE x = 1"

	pieces, err := lex(source)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	if len(pieces) != 3 {
		t.Fatalf("expected 3 pieces, got %d", len(pieces))
	}

	if pieces[0].kind != pieceData || pieces[0].content != "SELECT * FROM " {
		t.Fatalf("unexpected first piece: %+v", pieces[0])
	}

	if pieces[1].kind != pieceExpression || pieces[1].content != "{{ ref('users') }}" {
		t.Fatalf("unexpected expression piece: %+v", pieces[1])
	}

	if pieces[2].kind != pieceData || pieces[2].content != " WHERE x = 1" {
		t.Fatalf("unexpected trailing piece: %+v", pieces[2])
	}
}

func TestLexReproducesOriginalBytes(t *testing.T) {
	source := "a {{ ref('x') }} b {% if y %} c {% endif %} d {# note #} e"

	pieces, err := lex(source)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	rebuilt := ""
	pos := 0

	for _, p := range pieces {
		if p.start != pos {
			t.Fatalf("piece starts at %d, expected %d", p.start, pos)
		}

		if source[p.start:p.end] != p.content {
			t.Fatalf("piece content %q does not match source slice", p.content)
		}

		rebuilt += p.content
		pos = p.end
	}

	if rebuilt != source {
		t.Fatalf("pieces do not reproduce source: %q", rebuilt)
	}
}

func TestLexUnterminatedExpression(t *testing.T) {
	if _, err := lex("SELECT {{ ref('x') FROM t"); err == nil {
		t.Fatal("expected error for unterminated expression")
	}
}

func TestLexUnterminatedStringInsideUnit(t *testing.T) {
	if _, err := lex("{{ ref('x }}"); err == nil {
		t.Fatal("expected error for unterminated string")
	}
}

func TestLexBracesInsideExpression(t *testing.T) {
	source := "{{ config(tags={'a': 1}) }} SELECT 1"

	pieces, err := lex(source)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}

	if pieces[0].content != "{{ config(tags={'a': 1}) }}" {
		t.Fatalf("dict braces terminated the unit early: %q", pieces[0].content)
	}
}

func TestFirstName(t *testing.T) {
	tests := []struct {
		content  string
		expected string
	}{
		{"{{ ref('users') }}", "ref"},
		{"{{- var('id') -}}", "var"},
		{"{% if x %}", "if"},
		{"{% endfor %}", "endfor"},
		{"{{ 'name_in_string' | upper }}", "upper"},
		{"{{ }}", ""},
	}

	for _, tt := range tests {
		if got := firstName(tt.content); got != tt.expected {
			t.Errorf("firstName(%q) = %q, expected %q", tt.content, got, tt.expected)
		}
	}
}
